package models

// Customer is a phone-book (CRM) contact. Phone is the unique key upstream.
type Customer struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	WeChat      string `json:"wechat,omitempty"`
	Viber       string `json:"viber,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Telegram    string `json:"telegram,omitempty"`
	NoShowCount int    `json:"no_show_count,omitempty"`
	Notes       string `json:"notes,omitempty"`
	IsVIP       bool   `json:"is_vip,omitempty"`
	LastVisit   string `json:"last_visit,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
