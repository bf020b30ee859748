package service

import (
	"context"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
)

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	paymentRepo domain.PaymentRepository
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(paymentRepo domain.PaymentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
	}
}

// ListPayments получает все платежи
func (s *PaymentService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}

	return payments, nil
}
