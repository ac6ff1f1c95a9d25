package model

// GuestbookEntry is a free-text message left by a visitor. created_at is
// stored and served as an RFC 3339 UTC string stamped by the service.
type GuestbookEntry struct {
	ID        int64  `db:"id" json:"id"`
	CreatedAt string `db:"created_at" json:"created_at"`
	Name      string `db:"name" json:"name"`
	Message   string `db:"message" json:"message"`
}

// RSVPResponse is an attendance reply. Attend is one of yes/maybe/no.
type RSVPResponse struct {
	ID        int64  `db:"id" json:"id"`
	CreatedAt string `db:"created_at" json:"created_at"`
	Name      string `db:"name" json:"name"`
	Contact   string `db:"contact" json:"contact"`
	Attend    string `db:"attend" json:"attend"`
	People    int    `db:"people" json:"people"`
	Memo      string `db:"memo" json:"memo"`
}
