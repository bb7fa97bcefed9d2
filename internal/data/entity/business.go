package entity

type Business struct {
	ID            int64  `db:"id"`
	OwnerID       int64  `db:"owner_id"`
	Name          string `db:"name"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	ZipCode       string `db:"zip_code"`
}
