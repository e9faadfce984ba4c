// models/certification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizOption is one multiple-choice option, identified by a letter.
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion is a certification question. The correct answer letter is
// never serialized to clients.
type QuizQuestion struct {
	ID            int          `json:"id"`
	Category      string       `json:"category"`
	Question      string       `json:"question"`
	Options       []QuizOption `json:"options"`
	CorrectAnswer string       `json:"-"`
}

// QuizSubmission maps question ids to the selected option letter.
type QuizSubmission struct {
	Answers map[int]string `json:"answers" validate:"required"`
}

// QuizResult is the graded outcome of a quiz submission.
type QuizResult struct {
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	Percentage    float64 `json:"percentage"`
	Passed        bool    `json:"passed"`
	CertificateID string  `json:"certificateId,omitempty"`
}

// Certificate records a passed certification exam. CertificateID is the
// public identifier embedded in the verification QR code.
type Certificate struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CertificateID string             `json:"certificateId" bson:"certificateId"`
	PartnerID     primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	PartnerName   string             `json:"partnerName" bson:"partnerName"`
	Percentage    float64            `json:"percentage" bson:"percentage"`
	IssuedAt      time.Time          `json:"issuedAt" bson:"issuedAt"`
}
