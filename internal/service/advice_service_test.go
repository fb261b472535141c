package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/llm"
)

type stubProvider struct {
	name string
	text string
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestAdviceService(t *testing.T, chain *llm.Chain) (AdviceService, *checkInService, *MockUserRepository) {
	t.Helper()
	users := NewMockUserRepository()
	checkIns := newTestCheckInService(users, NewMockCheckInStateRepository(), NewMockHistoryRepository())
	return NewAdviceService(checkIns, chain), checkIns, users
}

func TestAdvise_WellnessQueryUsesSelector(t *testing.T) {
	// Provider would fail; the selector must answer without touching it.
	chain := llm.NewChain(&stubProvider{name: "openai", err: errors.New("down")})
	svc, checkIns, users := newTestAdviceService(t, chain)
	userID := seedUser(t, users, "UTC")

	// Submit a high-stress morning so the aggregates steer the branch.
	_, err := checkIns.UpdateSlot(context.Background(), userID, domain.SlotMorning, &domain.UpdateSlotRequest{
		Mood:   intPtr(6),
		Stress: intPtr(8),
		Sleep:  floatPtr(7),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := checkIns.SubmitSlot(context.Background(), userID, domain.SlotMorning); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Advise(context.Background(), userID, &domain.AdviceRequest{Query: "I'm so stressed about exams"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != "selector" {
		t.Errorf("Source = %q, want selector", resp.Source)
	}
	if resp.Branch != "study/high-stress" {
		t.Errorf("Branch = %q, want study/high-stress", resp.Branch)
	}
	if !strings.Contains(resp.Text, "Based on your recent check-ins") {
		t.Errorf("Text missing context prefix: %q", resp.Text)
	}
	if resp.Context.AvgStress != 8 {
		t.Errorf("Context.AvgStress = %v, want 8", resp.Context.AvgStress)
	}
}

func TestAdvise_EmptyQuery(t *testing.T) {
	svc, _, users := newTestAdviceService(t, llm.NewChain())
	userID := seedUser(t, users, "UTC")

	resp, err := svc.Advise(context.Background(), userID, &domain.AdviceRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Branch != "empty-query" {
		t.Errorf("Branch = %q, want empty-query", resp.Branch)
	}
	if strings.Contains(resp.Text, "Based on your recent check-ins") {
		t.Errorf("empty query answer should not carry the context prefix: %q", resp.Text)
	}
}

func TestAdvise_NonWellnessQueryUsesChain(t *testing.T) {
	chain := llm.NewChain(
		&stubProvider{name: "openai", err: errors.New("down")},
		&stubProvider{name: "cohere", text: "A capital answer."},
	)
	svc, _, users := newTestAdviceService(t, chain)
	userID := seedUser(t, users, "UTC")

	resp, err := svc.Advise(context.Background(), userID, &domain.AdviceRequest{Query: "what is the capital of France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != "cohere" {
		t.Errorf("Source = %q, want cohere", resp.Source)
	}
	if resp.Text != "A capital answer." {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Branch != "" {
		t.Errorf("Branch = %q, want empty for proxied answers", resp.Branch)
	}
}

func TestAdvise_ChainExhaustedFallsBack(t *testing.T) {
	chain := llm.NewChain(&stubProvider{name: "openai", err: errors.New("down")})
	svc, _, users := newTestAdviceService(t, chain)
	userID := seedUser(t, users, "UTC")

	resp, err := svc.Advise(context.Background(), userID, &domain.AdviceRequest{Query: "tell me a joke"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", resp.Source)
	}
	if resp.Text == "" {
		t.Error("fallback text must never be empty")
	}
}

func TestAdvise_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAdviceService(t, llm.NewChain())

	_, err := svc.Advise(context.Background(), uuid.New(), &domain.AdviceRequest{Query: "stress"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
