// services/certification_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/storage"
)

// PassingPercentage is the minimum exam result that earns a certificate.
const PassingPercentage = 75.0

// CertificationService grades certification exams and issues certificates.
type CertificationService struct {
	store     *storage.Store
	questions []models.QuizQuestion
}

// NewCertificationService builds a CertificationService with the default
// question bank.
func NewCertificationService(store *storage.Store) *CertificationService {
	return &CertificationService{store: store, questions: QuestionBank()}
}

// Questions returns the exam questions for clients. Correct answers are not
// serialized.
func (s *CertificationService) Questions() []models.QuizQuestion {
	return s.questions
}

// Grade scores a submission against the question bank. Pure function of the
// bank; unanswered or unknown questions count as wrong.
func Grade(questions []models.QuizQuestion, answers map[int]string) models.QuizResult {
	if len(questions) == 0 {
		return models.QuizResult{}
	}

	var correct int
	for _, question := range questions {
		if answers[question.ID] == question.CorrectAnswer {
			correct++
		}
	}
	percentage := float64(correct) / float64(len(questions)) * 100
	return models.QuizResult{
		Correct:    correct,
		Total:      len(questions),
		Percentage: percentage,
		Passed:     percentage >= PassingPercentage,
	}
}

// Submit grades the partner's answers and, on a pass, issues a certificate
// and marks the partner certified.
func (s *CertificationService) Submit(
	ctx context.Context,
	partnerID primitive.ObjectID,
	answers map[int]string,
) (*models.QuizResult, error) {
	partner, err := s.store.PartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	result := Grade(s.questions, answers)
	if !result.Passed {
		return &result, nil
	}

	now := time.Now()
	certificate := models.Certificate{
		CertificateID: uuid.NewString(),
		PartnerID:     partnerID,
		PartnerName:   partner.FullName(),
		Percentage:    result.Percentage,
		IssuedAt:      now,
	}
	if _, err := s.store.CreateDocument(ctx, storage.CollectionCertificates, certificate); err != nil {
		return nil, err
	}

	_, err = s.store.Database().Collection(storage.CollectionPartners).UpdateByID(ctx, partnerID, bson.M{
		"$set": bson.M{"isCertified": true, "certifiedAt": now},
	})
	if err != nil {
		return nil, fmt.Errorf("marking partner certified: %w", err)
	}

	result.CertificateID = certificate.CertificateID
	return &result, nil
}

// Verify looks up a certificate by its public id; missing certificates yield
// (nil, nil).
func (s *CertificationService) Verify(ctx context.Context, certificateID string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := s.store.Database().Collection(storage.CollectionCertificates).
		FindOne(ctx, bson.M{"certificateId": certificateID}).Decode(&certificate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verifying certificate: %w", err)
	}
	return &certificate, nil
}
