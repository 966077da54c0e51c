package translations

import (
	"context"
	"errors"
	"sync"
	"testing"

	"intl-sheets/core/catalog"
	"intl-sheets/core/reconcile"
	"intl-sheets/core/sheets"
	"intl-sheets/core/sheets/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSheet = "sheet-id"

type stubCatalog struct {
	messages []reconcile.Message
	err      error
}

func (s *stubCatalog) Load(ctx context.Context) ([]reconcile.Message, error) {
	return s.messages, s.err
}

func testLanguages(t *testing.T) sheets.LanguageSet {
	t.Helper()
	set, err := sheets.ParseLanguages("en:EN,de:DE,pl:PL", "pl")
	require.NoError(t, err)
	return set
}

func newTestService(t *testing.T, cat CatalogLoader) (*Service, *mocks.Client) {
	client := new(mocks.Client)
	return NewService(client, cat, testSheet, testLanguages(t), zap.NewNop()), client
}

func TestService_Sync_AddAndRemove(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "b", Message: "B"}, {ID: "c", Message: "C"}}}
	svc, client := newTestService(t, cat)

	client.On("Get", mock.Anything, testSheet, "PL!A2:B").Return([][]string{{"a", "A"}, {"b", "B"}}, nil)
	client.On("Get", mock.Anything, testSheet, "EN!A2:C").Return([][]string{{"a", "A", "x"}, {"b", "B", "y"}}, nil)
	client.On("Get", mock.Anything, testSheet, "DE!A2:C").Return([][]string{{"a", "A"}}, nil)

	for _, rng := range []string{"PL!A2:B", "EN!A2:C", "DE!A2:C"} {
		client.On("Clear", mock.Anything, testSheet, rng).Return(nil).Once()
	}
	client.On("BatchUpdate", mock.Anything, testSheet, []sheets.ValueRange{
		{Range: "PL!A2:B", Values: [][]string{{"b", "B"}, {"c", "C"}}},
	}).Return(nil).Once()
	client.On("BatchUpdate", mock.Anything, testSheet, []sheets.ValueRange{
		{Range: "EN!A2:C", Values: [][]string{{"b", "B", "y"}, {"c", "C", ""}}},
	}).Return(nil).Once()
	client.On("BatchUpdate", mock.Anything, testSheet, []sheets.ValueRange{
		{Range: "DE!A2:C", Values: [][]string{{"c", "C", ""}}},
	}).Return(nil).Once()

	report, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	client.AssertExpectations(t)
	assert.False(t, report.DryRun)
	assert.Equal(t, []string{"a"}, report.Plan.StaleIDs)
	assert.Equal(t, []string{"b"}, report.Plan.Missing["de"])

	require.Len(t, report.Results, 6)
	var got []string
	for _, res := range report.Results {
		got = append(got, string(res.Op)+" "+res.Range)
	}
	assert.Equal(t, []string{
		"clear PL!A2:B", "clear EN!A2:C", "clear DE!A2:C",
		"write PL!A2:B", "write EN!A2:C", "write DE!A2:C",
	}, got)
}

func TestService_Sync_PhaseOrder(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "a", Message: "A"}}}
	svc, client := newTestService(t, cat)

	var (
		mu  sync.Mutex
		ops []string
	)
	record := func(op string) func(mock.Arguments) {
		return func(args mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			if op == "clear" {
				ops = append(ops, op+" "+args.String(2))
				return
			}
			data := args.Get(2).([]sheets.ValueRange)
			ops = append(ops, op+" "+data[0].Range)
		}
	}

	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{}, nil)
	client.On("Clear", mock.Anything, testSheet, mock.Anything).Run(record("clear")).Return(nil)
	client.On("BatchUpdate", mock.Anything, testSheet, mock.Anything).Run(record("write")).Return(nil)

	_, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)

	require.Len(t, ops, 6)
	assert.Equal(t, "clear PL!A2:B", ops[0])
	assert.ElementsMatch(t, []string{"clear EN!A2:C", "clear DE!A2:C"}, ops[1:3])
	assert.Equal(t, "write PL!A2:B", ops[3])
	assert.ElementsMatch(t, []string{"write EN!A2:C", "write DE!A2:C"}, ops[4:6])
}

func TestService_Sync_DryRun(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "a", Message: "A"}}}
	svc, client := newTestService(t, cat)

	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{}, nil)

	report, err := svc.Sync(context.Background(), Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Empty(t, report.Results)
	assert.Equal(t, 1, report.Plan.Summary.Added)
	client.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "BatchUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Sync_CatalogError(t *testing.T) {
	parseErr := &catalog.ParseError{Path: "intl-messages.json", Err: errors.New("bad json")}
	svc, client := newTestService(t, &stubCatalog{err: parseErr})

	_, err := svc.Sync(context.Background(), Options{})

	var perr *catalog.ParseError
	assert.True(t, errors.As(err, &perr))
	client.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Sync_DuplicateCatalogID(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "a"}, {ID: "a"}}}
	svc, client := newTestService(t, cat)
	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{}, nil)

	_, err := svc.Sync(context.Background(), Options{})

	assert.ErrorIs(t, err, reconcile.ErrDuplicateID)
	client.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Sync_ReadError(t *testing.T) {
	tests := []struct {
		name     string
		failing  string
		language string
	}{
		{"Base", "PL!A2:B", "pl"},
		{"Secondary", "DE!A2:C", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &stubCatalog{messages: []reconcile.Message{{ID: "a", Message: "A"}}}
			svc, client := newTestService(t, cat)

			client.On("Get", mock.Anything, testSheet, tt.failing).Return(nil, assert.AnError)
			client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{}, nil)

			report, err := svc.Sync(context.Background(), Options{})
			assert.Nil(t, report)

			var rerr *RemoteError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, "read", rerr.Op)
			assert.Equal(t, tt.language, rerr.Language)
			assert.Equal(t, tt.failing, rerr.Range)
			assert.ErrorIs(t, err, assert.AnError)

			client.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
			client.AssertNotCalled(t, "BatchUpdate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Sync_WriteFailureContinues(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "a", Message: "A"}}}
	svc, client := newTestService(t, cat)

	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{}, nil)
	client.On("Clear", mock.Anything, testSheet, "DE!A2:C").Return(assert.AnError)
	client.On("Clear", mock.Anything, testSheet, mock.Anything).Return(nil)
	client.On("BatchUpdate", mock.Anything, testSheet, mock.MatchedBy(func(data []sheets.ValueRange) bool {
		return data[0].Range == "EN!A2:C"
	})).Return(assert.AnError)
	client.On("BatchUpdate", mock.Anything, testSheet, mock.Anything).Return(nil)

	report, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, OpClear, failed[0].Op)
	assert.Equal(t, "de", failed[0].Language)
	assert.Equal(t, OpWrite, failed[1].Op)
	assert.Equal(t, "en", failed[1].Language)
	assert.NotEmpty(t, failed[1].Error)

	// Every range was still attempted.
	client.AssertNumberOfCalls(t, "Clear", 3)
	client.AssertNumberOfCalls(t, "BatchUpdate", 3)

	err = report.Err()
	assert.ErrorIs(t, err, ErrPartialSync)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "2 of 6")
}

func TestService_Sync_EmptyCatalogSkipsWrites(t *testing.T) {
	svc, client := newTestService(t, &stubCatalog{messages: []reconcile.Message{}})

	client.On("Get", mock.Anything, testSheet, "PL!A2:B").Return([][]string{{"old", "Old"}}, nil)
	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{{"old", "Old", "Alt"}}, nil)
	client.On("Clear", mock.Anything, testSheet, mock.Anything).Return(nil)

	report, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	client.AssertNumberOfCalls(t, "Clear", 3)
	client.AssertNotCalled(t, "BatchUpdate", mock.Anything, mock.Anything, mock.Anything)
	for _, res := range report.Results[3:] {
		assert.True(t, res.Skipped)
	}
}

func TestService_Plan_NoWrites(t *testing.T) {
	cat := &stubCatalog{messages: []reconcile.Message{{ID: "a", Message: "A"}}}
	svc, client := newTestService(t, cat)

	client.On("Get", mock.Anything, testSheet, "PL!A2:B").Return([][]string{{"a", "A"}}, nil)
	client.On("Get", mock.Anything, testSheet, mock.Anything).Return([][]string{{"a", "A", "tr"}}, nil)

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)

	assert.True(t, plan.IsNoop())
	assert.Equal(t, []reconcile.TranslationRow{{ID: "a", Ref: "A", Message: "tr"}}, plan.Secondary["en"])
	client.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
}
