package dto

type AddLineVendorRequest struct {
	PartyID    *int64  `json:"party_id"`
	VendorName *string `json:"vendor_name"`
	Role       *string `json:"role"`
	Note       *string `json:"note"`
}

type AddLineVendorResponse struct {
	OK      bool  `json:"ok"`
	PartyID int64 `json:"party_id"`
}

type CreateVendorRequest struct {
	Name string `json:"name"`
}

type CreateVendorResponse struct {
	PartyID int64 `json:"party_id"`
}
