package models

// MenuPrice is one priced size of a dish. Seasonal prices carry no amount and
// are rendered as "Market Price".
type MenuPrice struct {
	Size       string `json:"size"`
	Price      string `json:"price,omitempty"`
	IsSeasonal bool   `json:"is_seasonal"`
}

// MenuItem is a single dish, optionally carrying a kitchen code (e.g. BA01).
type MenuItem struct {
	ID             int         `json:"id"`
	Code           string      `json:"code,omitempty"`
	Name           string      `json:"name"`
	NameZH         string      `json:"name_zh,omitempty"`
	Description    string      `json:"description,omitempty"`
	Image          string      `json:"image,omitempty"`
	IsAvailable    bool        `json:"is_available"`
	CookingMethods []string    `json:"cooking_methods,omitempty"`
	Prices         []MenuPrice `json:"prices"`
}

// MenuCategory groups dishes in menu display order.
type MenuCategory struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	NameZH string     `json:"name_zh,omitempty"`
	Order  int        `json:"order"`
	Items  []MenuItem `json:"items"`
}
