package model

// Candidate is a read-only projection of the candidates table.
type Candidate struct {
    ID        string `db:"id" json:"id"`
    Name      string `db:"name" json:"name"`
    Email     string `db:"email" json:"email"`
    Phone     string `db:"phone" json:"phone"`
    Role      string `db:"role" json:"role"`
    Status    string `db:"status" json:"status"`
    CreatedAt string `db:"created_at" json:"created_at"`
    CVKey     string `db:"cv_url" json:"cv_url"`
}
