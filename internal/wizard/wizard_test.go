package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// stubService is a PlannerService double with per-call hooks.
type stubService struct {
	generate func(domain.PlanInput) (domain.GeneratedPlan, error)
	execute  func(domain.GeneratedPlan) (*port.ExecutionResult, error)
}

func (s *stubService) Campaigns(context.Context, port.CampaignFilter) ([]domain.CampaignWithMetrics, error) {
	return nil, nil
}

func (s *stubService) GeneratePlan(_ context.Context, input domain.PlanInput) (domain.GeneratedPlan, error) {
	if s.generate != nil {
		return s.generate(input)
	}
	return domain.GeneratedPlan{
		Objective:         input.Objective,
		DailyBudget:       input.DailyBudget,
		ProductCategories: input.Categories(),
	}, nil
}

func (s *stubService) ExecutePlan(_ context.Context, plan domain.GeneratedPlan) (*port.ExecutionResult, error) {
	if s.execute != nil {
		return s.execute(plan)
	}
	return &port.ExecutionResult{Message: "Successfully created 3 campaign(s)"}, nil
}

func (s *stubService) CampaignMetrics(context.Context, int64, int) ([]domain.MetricRecord, error) {
	return nil, nil
}

func (s *stubService) MetricsOverview(context.Context, int) ([]port.CampaignMetricsSummary, error) {
	return nil, nil
}

func testInput() domain.PlanInput {
	return domain.PlanInput{Objective: "Sales", DailyBudget: 100, ProductCategories: "Shoes"}
}

func TestHappyPath(t *testing.T) {
	m := New(&stubService{})
	ctx := context.Background()

	assert.Equal(t, StateInput, m.State())
	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(ctx))
	assert.Equal(t, StateReview, m.State())

	plan, ok := m.Plan()
	require.True(t, ok)
	assert.Equal(t, []string{"Shoes"}, plan.ProductCategories)

	result, err := m.Confirm(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Successfully created 3 campaign(s)", result.Message)
	assert.Equal(t, StateClosed, m.State())

	_, ok = m.Plan()
	assert.False(t, ok)
	assert.Empty(t, m.Input().ProductCategories)
}

func TestSubmitFailureReturnsToInput(t *testing.T) {
	verr := domain.NewValidationError("dailyBudget", "daily budget must be at least 1")
	m := New(&stubService{
		generate: func(domain.PlanInput) (domain.GeneratedPlan, error) {
			return domain.GeneratedPlan{}, verr
		},
	})
	ctx := context.Background()

	require.NoError(t, m.SetInput(testInput()))
	err := m.Submit(ctx)
	require.Error(t, err)

	assert.Equal(t, StateInput, m.State())
	assert.Equal(t, verr, m.Err())
	// The form survives a failed submit.
	assert.Equal(t, "Shoes", m.Input().ProductCategories)
	_, ok := m.Plan()
	assert.False(t, ok)
}

func TestBackDiscardsPlanKeepsInput(t *testing.T) {
	m := New(&stubService{})
	ctx := context.Background()

	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(ctx))
	require.NoError(t, m.Back())

	assert.Equal(t, StateInput, m.State())
	_, ok := m.Plan()
	assert.False(t, ok)
	assert.Equal(t, "Shoes", m.Input().ProductCategories)
}

func TestConfirmFailureStaysInReview(t *testing.T) {
	execErr := errors.New("all platforms failed")
	m := New(&stubService{
		execute: func(domain.GeneratedPlan) (*port.ExecutionResult, error) {
			return nil, execErr
		},
	})
	ctx := context.Background()

	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(ctx))

	_, err := m.Confirm(ctx)
	require.ErrorIs(t, err, execErr)
	assert.Equal(t, StateReview, m.State())
	assert.Equal(t, execErr, m.Err())

	// The retained plan allows retrying without regenerating.
	_, ok := m.Plan()
	assert.True(t, ok)
}

func TestConfirmRetryAfterFailure(t *testing.T) {
	calls := 0
	m := New(&stubService{
		execute: func(domain.GeneratedPlan) (*port.ExecutionResult, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			return &port.ExecutionResult{Message: "ok"}, nil
		},
	})
	ctx := context.Background()

	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(ctx))

	_, err := m.Confirm(ctx)
	require.Error(t, err)

	result, err := m.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Message)
	assert.Equal(t, StateClosed, m.State())
	assert.NoError(t, m.Err())
}

func TestGuardedTransitions(t *testing.T) {
	m := New(&stubService{})
	ctx := context.Background()

	var terr *TransitionError

	_, err := m.Confirm(ctx)
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, StateInput, terr.From)

	require.ErrorAs(t, m.Back(), &terr)
	require.ErrorAs(t, m.Reopen(), &terr)

	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(ctx))

	// In review, editing the form and resubmitting are rejected.
	require.ErrorAs(t, m.SetInput(testInput()), &terr)
	require.ErrorAs(t, m.Submit(ctx), &terr)
	assert.Equal(t, "submit", terr.Event)
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	m := New(nil)
	m.svc = &stubService{
		generate: func(input domain.PlanInput) (domain.GeneratedPlan, error) {
			// Simulate the user closing the wizard while the call runs.
			m.Close()
			return domain.GeneratedPlan{Objective: input.Objective}, nil
		},
	}

	require.NoError(t, m.SetInput(testInput()))
	require.NoError(t, m.Submit(context.Background()))

	// The stale result is dropped, not promoted to review.
	assert.Equal(t, StateClosed, m.State())
	_, ok := m.Plan()
	assert.False(t, ok)
}

func TestReopenResetsForm(t *testing.T) {
	m := New(&stubService{})

	require.NoError(t, m.SetInput(testInput()))
	m.Close()
	require.NoError(t, m.Reopen())

	assert.Equal(t, StateInput, m.State())
	assert.Empty(t, m.Input().ProductCategories)
	assert.NoError(t, m.Err())
}
