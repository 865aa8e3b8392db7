package entities

type Seller struct {
	SellerID string
	Name     string
	Bio      string
	Verified bool
}
