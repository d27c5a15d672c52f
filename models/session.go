package models

import "time"

// Tokens is the access/refresh pair issued by the upstream token endpoint.
// Tokens never leave this service; the browser holds only a session cookie.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// StaffSession is the server-side record behind a staff session cookie.
type StaffSession struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
