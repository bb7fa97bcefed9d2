package response

import (
	"business-directory/internal/data/entity"
)

type BusinessResponse struct {
	ID            int64  `json:"id"`
	OwnerID       int64  `json:"owner_id"`
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Self          string `json:"self"`
}

func BusinessToResponse(business *entity.Business, links Links) BusinessResponse {
	return BusinessResponse{
		ID:            business.ID,
		OwnerID:       business.OwnerID,
		Name:          business.Name,
		StreetAddress: business.StreetAddress,
		City:          business.City,
		State:         business.State,
		ZipCode:       business.ZipCode,
		Self:          links.Business(business.ID),
	}
}

func BusinessesToResponse(businesses []*entity.Business, links Links) []BusinessResponse {
	result := make([]BusinessResponse, len(businesses))
	for i, business := range businesses {
		result[i] = BusinessToResponse(business, links)
	}
	return result
}
