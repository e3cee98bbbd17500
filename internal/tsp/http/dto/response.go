package dto

import (
	"time"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// ApprovedTspResponse represents an approved TSP in API responses.
// The certificate itself is served by its own endpoint.
type ApprovedTspResponse struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	Name            string    `json:"name"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	CertificateHash string    `json:"certificate_sha256"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MapApprovedTspToResponse converts a domain record to an API response.
func MapApprovedTspToResponse(tsp *tspDomain.ApprovedTsp) ApprovedTspResponse {
	return ApprovedTspResponse{
		ID:              tsp.ID.String(),
		URL:             tsp.URL,
		Name:            tsp.Name,
		ValidFrom:       tsp.ValidFrom,
		ValidTo:         tsp.ValidTo,
		CertificateHash: tsp.CertificateHash,
		CreatedAt:       tsp.CreatedAt,
		UpdatedAt:       tsp.UpdatedAt,
	}
}

// ListApprovedTspsResponse is one page of records plus the total match count.
type ListApprovedTspsResponse struct {
	Data  []ApprovedTspResponse `json:"data"`
	Total int64                 `json:"total"`
}

// MapApprovedTspsToListResponse converts a page of domain records to a list response.
func MapApprovedTspsToListResponse(tsps []*tspDomain.ApprovedTsp, total int64) ListApprovedTspsResponse {
	data := make([]ApprovedTspResponse, 0, len(tsps))
	for _, tsp := range tsps {
		data = append(data, MapApprovedTspToResponse(tsp))
	}

	return ListApprovedTspsResponse{
		Data:  data,
		Total: total,
	}
}
