package domain

import "time"

type ComplaintStatus string

const ComplaintStatusOpen ComplaintStatus = "open"

// Complaint é uma reclamação registrada por um vendedor
type Complaint struct {
	ID               string          `json:"id"`
	VendorID         string          `json:"vendor_id"`
	Subject          string          `json:"subject"`
	Description      string          `json:"description"`
	PreferredContact *string         `json:"preferred_contact,omitempty"`
	EvidenceURL      *string         `json:"evidence_url,omitempty"`
	Status           ComplaintStatus `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type ComplaintRequest struct {
	Subject          string  `json:"subject"`
	Description      string  `json:"description"`
	PreferredContact *string `json:"preferred_contact"`
	EvidenceURL      *string `json:"evidence_url"`
}

// ItemRequest é um pedido de mercadoria ou insumo feito pelo vendedor
type ItemRequest struct {
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemRequestPayload struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

// SupportFilters restringe as listagens de suporte; VendorID vazio lista tudo
type SupportFilters struct {
	VendorID string
}

type IDVerificationRequest struct {
	GSTIN *string `json:"gstin"`
	FSSAI *string `json:"fssai"`
}

// IDVerificationSourceFormat: apenas o formato foi conferido, sem consulta a órgão oficial
const IDVerificationSourceFormat = "format_only"

type IDVerificationResult struct {
	Source           string  `json:"source"`
	GSTIN            *string `json:"gstin,omitempty"`
	GSTINValidFormat *bool   `json:"gstin_valid_format,omitempty"`
	FSSAI            *string `json:"fssai,omitempty"`
	FSSAIValidFormat *bool   `json:"fssai_valid_format,omitempty"`
}

// Policy é uma política pública relevante para vendedores ambulantes
type Policy struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Region  string `json:"region"`
}
