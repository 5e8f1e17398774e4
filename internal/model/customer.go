package model

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

type Customer struct {
	BaseModel
	Email     string  `db:"email" json:"email"`
	Password  string  `db:"password" json:"-"` // bcrypt hash, never serialized
	FirstName string  `db:"first_name" json:"firstName"`
	LastName  string  `db:"last_name" json:"lastName"`
	Phone     *string `db:"phone" json:"phone"`
	Role      string  `db:"role" json:"role"`
	FaceData  *string `db:"face_data" json:"-"` // opaque descriptor, exposed only via the admin face routes
}

type Address struct {
	BaseModel
	CustomerID string `db:"customer_id" json:"customerId"`
	Street     string `db:"street" json:"street"`
	City       string `db:"city" json:"city"`
	State      string `db:"state" json:"state"`
	ZipCode    string `db:"zip_code" json:"zipCode"`
	Country    string `db:"country" json:"country"`
	IsDefault  bool   `db:"is_default" json:"isDefault"`
}
