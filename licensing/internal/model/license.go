package model

import (
	"time"
)

type CustomerType string

const (
	CustomerSecretary CustomerType = "SECRETARY"
	CustomerSchool    CustomerType = "SCHOOL"
)

type BatchStatus string

const (
	BatchCreated  BatchStatus = "CRIADO"
	BatchSent     BatchStatus = "ENVIADO"
	BatchReceived BatchStatus = "RECEBIDO"
)

// VisibleToSecretary lists the statuses a secretariat can see for its own batches.
var VisibleToSecretary = []BatchStatus{BatchSent, BatchReceived}

type KeyStatus string

const (
	KeyAvailable KeyStatus = "DISPONIVEL"
)

type LicenseBatch struct {
	ID            int          `json:"id" db:"id"`
	BookID        int          `json:"book_id" db:"book_id"`
	Quantity      int          `json:"quantity" db:"quantity"`
	CustomerType  CustomerType `json:"customer_type" db:"customer_type"`
	SecretaryID   *int         `json:"secretary_id" db:"secretary_id"`
	SchoolID      *int         `json:"school_id" db:"school_id"`
	ParentBatchID *int         `json:"parent_batch_id" db:"parent_batch_id"`
	Status        BatchStatus  `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	SentAt        *time.Time   `json:"sentAt" db:"sent_at"`
	ReceivedAt    *time.Time   `json:"receivedAt" db:"received_at"`
}

type LicenseKey struct {
	ID          int        `json:"id" db:"id"`
	BatchID     int        `json:"batch_id" db:"batch_id"`
	Code        string     `json:"code" db:"code"`
	Status      KeyStatus  `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	ActivatedAt *time.Time `json:"activatedAt" db:"activated_at"`
}

// MaxBatchQuantity caps the keys generated in one batch; keep in sync with the lte tag below.
const MaxBatchQuantity = 100000

type CreateBatchRequest struct {
	BookID      int  `json:"book_id" validate:"gte=0"`
	Quantity    int  `json:"quantity" validate:"gte=0,lte=100000"`
	SecretaryID *int `json:"secretary_id"`
	SchoolID    *int `json:"school_id"`
}

// NewBatch is what the repository persists in one transaction: the batch row and its codes.
type NewBatch struct {
	BookID       int
	Quantity     int
	CustomerType CustomerType
	SecretaryID  *int
	SchoolID     *int
	Codes        []string
}

type CreatedBatch struct {
	LicenseBatch
	KeysGenerated int `json:"keys_generated"`
}

type Ref struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type BookRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type BatchSummary struct {
	LicenseBatch
	Book      BookRef `json:"book"`
	Secretary *Ref    `json:"secretary"`
	School    *Ref    `json:"school"`
	KeysCount int     `json:"keys_count"`
}

type BatchDetail struct {
	LicenseBatch
	Book BookRef      `json:"book"`
	Keys []LicenseKey `json:"keys"`
}

type UpdateBatchStatusRequest struct {
	Status BatchStatus `json:"status" validate:"required"`
}

// Customer is the resolved receiver of a batch, used to build the code prefix.
type Customer struct {
	Type CustomerType
	ID   int
	Name string
}

type BatchEvent struct {
	Type      string       `json:"type"`
	BatchID   int          `json:"batch_id"`
	BookID    int          `json:"book_id"`
	Quantity  int          `json:"quantity"`
	Customer  CustomerType `json:"customer_type"`
	Status    BatchStatus  `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

const (
	EventBatchCreated = "license_batch.created"
	EventBatchSent    = "license_batch.sent"
)
