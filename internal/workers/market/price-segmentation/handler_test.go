package pricesegmentation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"location-strategy-workers/internal/common/camunda/camundatest"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/warehouse"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

// ==========================
// Test Helper Functions
// ==========================

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Execute(ctx context.Context, input *analyzemarketgaps.Input) (*analyzemarketgaps.Output, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*analyzemarketgaps.Output)
	return out, args.Error(1)
}

func priceOutput(rows ...analyzemarketgaps.PriceDistributionRow) *analyzemarketgaps.Output {
	results := make([]analyzemarketgaps.MarketGapRow, 0, len(rows))
	for _, r := range rows {
		results = append(results, r)
	}
	return &analyzemarketgaps.Output{
		AnalysisMode: models.AnalysisModePriceDistribution,
		City:         "Chicago",
		Results:      results,
	}
}

func newTestHandler(t *testing.T, analyzer MarketAnalyzer) *Handler {
	return NewHandler(&Config{Timeout: 5 * time.Second}, analyzer, logger.NewTestLogger(t))
}

func priceRequest() *analyzemarketgaps.Input {
	return &analyzemarketgaps.Input{
		City:         "Chicago",
		BusinessType: "coffee_shop",
		AnalysisMode: "PRICE_DISTRIBUTION",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Execute", mock.Anything, priceRequest()).Return(priceOutput(
		analyzemarketgaps.PriceDistributionRow{PostalCode: "60601", BudgetCount: 5, ModerateCount: 2, LuxuryCount: 1},
		analyzemarketgaps.PriceDistributionRow{PostalCode: "60611", BudgetCount: 2, ModerateCount: 3, LuxuryCount: 5},
	), nil)

	h := newTestHandler(t, analyzer)
	out, err := h.Execute(context.Background(), &Input{City: "Chicago", BusinessType: "coffee_shop"})
	require.NoError(t, err)

	require.Len(t, out.Summary, 2)
	assert.Equal(t, MarketSegmentSummary{
		ZipCode:       "60601",
		MarketSegment: SegmentBudgetDominant,
		Details:       "Lux:1, Mod:2, Bud:5",
	}, out.Summary[0])
	assert.Equal(t, SegmentLuxuryDominant, out.Summary[1].MarketSegment)
	assert.Equal(t, "Lux:5, Mod:3, Bud:2", out.Summary[1].Details)
	analyzer.AssertExpectations(t)
}

func TestHandler_Execute_EmptyDistribution(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Execute", mock.Anything, mock.Anything).Return(priceOutput(), nil)

	h := newTestHandler(t, analyzer)
	result := h.Invoke(context.Background(), &Input{City: "Chicago", BusinessType: "coffee_shop"})
	require.True(t, result.OK())

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","data":{"summary":[]}}`, string(raw))
}

func TestHandler_Execute_AnalyzerErrorPassesThrough(t *testing.T) {
	upstream := apperrors.NewUpstreamTimeoutError("warehouse", context.DeadlineExceeded)
	analyzer := new(mockAnalyzer)
	analyzer.On("Execute", mock.Anything, mock.Anything).Return(nil, upstream)

	h := newTestHandler(t, analyzer)
	result := h.Invoke(context.Background(), &Input{City: "Chicago", BusinessType: "coffee_shop"})

	assert.False(t, result.OK())
	assert.Equal(t, "UPSTREAM_ERROR", result.ErrorCode)
	assert.Equal(t, "warehouse call timed out", result.ErrorMessage)
	assert.Nil(t, result.Data)
}

func TestHandler_Execute_RealAnalyzer(t *testing.T) {
	wh := &stubWarehouse{rows: []warehouse.Row{
		{"postal_code": "60601", "budget_count": int64(5), "moderate_count": int64(2), "luxury_count": int64(1)},
	}}
	analyzer := analyzemarketgaps.NewHandler(
		&analyzemarketgaps.Config{TableID: "places_insights.places", Timeout: time.Second},
		wh, nil, logger.NewTestLogger(t),
	)

	h := newTestHandler(t, analyzer)
	out, err := h.Execute(context.Background(), &Input{City: "Chicago", BusinessType: "coffee_shop"})
	require.NoError(t, err)
	require.Len(t, out.Summary, 1)
	assert.Equal(t, SegmentBudgetDominant, out.Summary[0].MarketSegment)
	assert.Contains(t, wh.last.SQL, "luxury_count")
}

// ==========================
// Validation Tests
// ==========================

func TestHandler_Execute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *Input
	}{
		{name: "nil input", input: nil},
		{name: "missing city", input: &Input{BusinessType: "coffee_shop"}},
		{name: "missing business type", input: &Input{City: "Chicago"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := new(mockAnalyzer)
			h := newTestHandler(t, analyzer)

			_, err := h.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			analyzer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

// ==========================
// Classification Tests
// ==========================

func TestClassify(t *testing.T) {
	tests := []struct {
		name                     string
		luxury, moderate, budget int64
		want                     Segment
	}{
		{name: "luxury dominant", luxury: 5, moderate: 3, budget: 2, want: SegmentLuxuryDominant},
		{name: "budget dominant", luxury: 1, moderate: 1, budget: 5, want: SegmentBudgetDominant},
		{name: "even split", luxury: 3, moderate: 3, budget: 3, want: SegmentMixed},
		{name: "luxury ties the rest", luxury: 4, moderate: 2, budget: 2, want: SegmentMixed},
		{name: "budget ties the rest", luxury: 1, moderate: 1, budget: 2, want: SegmentMixed},
		{name: "no priced places", want: SegmentMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.luxury, tt.moderate, tt.budget))
		})
	}
}

type stubWarehouse struct {
	rows []warehouse.Row
	last warehouse.Statement
}

func (s *stubWarehouse) Dialect() string { return warehouse.DialectBigQuery }

func (s *stubWarehouse) Query(_ context.Context, stmt warehouse.Statement) ([]warehouse.Row, error) {
	s.last = stmt
	if s.rows == nil {
		return nil, errors.New("no rows configured")
	}
	return s.rows, nil
}

// ==========================
// Job Handling Tests
// ==========================

func TestHandler_Handle_MalformedVariables(t *testing.T) {
	analyzer := new(mockAnalyzer)
	h := newTestHandler(t, analyzer)
	client, cmd := camundatest.NewCompletingClient()

	h.Handle(client, camundatest.Job(21, TaskType, `["Chicago"]`))

	cmd.AssertExpectations(t)
	assert.Equal(t, int64(21), cmd.Key)
	assert.Contains(t, cmd.VariablesJSON(t), `"error_code":"VALIDATION_ERROR"`)
	assert.Contains(t, cmd.VariablesJSON(t), `"error_message":"Invalid job variables. (parse input: json: cannot unmarshal array`)
	analyzer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_Success(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Execute", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), priceRequest()).Return(priceOutput(
		analyzemarketgaps.PriceDistributionRow{PostalCode: "60601", BudgetCount: 5, ModerateCount: 2, LuxuryCount: 1},
	), nil)

	h := newTestHandler(t, analyzer)
	client, cmd := camundatest.NewCompletingClient()

	h.Handle(client, camundatest.Job(22, TaskType, `{"city":"Chicago","business_type":"coffee_shop","maps_api_key":"ignored"}`))

	analyzer.AssertExpectations(t)
	cmd.AssertExpectations(t)
	assert.Equal(t, int64(22), cmd.Key)
	assert.JSONEq(t, `{"priceSegmentation":{"status":"success","data":{"summary":[
		{"zip_code":"60601","market_segment":"Budget Dominant","details":"Lux:1, Mod:2, Bud:5"}
	]}}}`, cmd.VariablesJSON(t))
}
