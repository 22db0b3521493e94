package model

// CampaignApplication is a read-only projection of the applications table.
// Every column except ID is nullable in the store; the repository flattens
// NULL to "" when scanning.
type CampaignApplication struct {
    ID         string `db:"id" json:"id"`
    Name       string `db:"name" json:"name"`
    Email      string `db:"email" json:"email"`
    Phone      string `db:"phone" json:"phone"`
    Position   string `db:"position" json:"position"`
    Segment    string `db:"segment" json:"segment"`
    Status     string `db:"status" json:"status"`
    CreatedAt  string `db:"created_at" json:"created_at"`
    CVKey      string `db:"cv_url" json:"cv_url"`
    CVFilename string `db:"cv_filename" json:"cv_filename"`
}
