package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type stubLedgerService struct {
	appendCalled bool
	appendEmail  string
	appendReq    dto.CreateTransactionRequest
	appendTx     *models.Transaction
	appendErr    error

	removeCalled bool
	removeEmail  string
	removeID     int64
	removeErr    error

	listCalled bool
	listEmail  string
	listQuery  dto.TransactionListQuery
	listTxs    []models.Transaction
	listErr    error
}

func (s *stubLedgerService) Append(_ context.Context, email string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	s.appendCalled = true
	s.appendEmail = email
	s.appendReq = req
	return s.appendTx, s.appendErr
}

func (s *stubLedgerService) Remove(_ context.Context, email string, id int64) error {
	s.removeCalled = true
	s.removeEmail = email
	s.removeID = id
	return s.removeErr
}

func (s *stubLedgerService) ListView(_ context.Context, email string, q dto.TransactionListQuery) ([]models.Transaction, error) {
	s.listCalled = true
	s.listEmail = email
	s.listQuery = q
	return s.listTxs, s.listErr
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), middleware.EmailKey, "a@x.com")
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListTransactionsPassesQuery(t *testing.T) {
	svc := &stubLedgerService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	req := authedRequest(http.MethodGet, "/?filter=expense&sortBy=amount&order=desc", "")
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !svc.listCalled {
		t.Fatal("expected ListView to be called on service")
	}
	if svc.listEmail != "a@x.com" {
		t.Fatalf("service received wrong email: %q", svc.listEmail)
	}
	want := dto.TransactionListQuery{Filter: "expense", SortBy: "amount", Order: "desc"}
	if svc.listQuery != want {
		t.Fatalf("query mismatch: got %+v", svc.listQuery)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
}

func TestCreateTransactionSuccess(t *testing.T) {
	svc := &stubLedgerService{appendTx: &models.Transaction{ID: 42}}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	body := `{"type":"expense","category":"Food","amount":"42.50","date":"2024-03-10","description":"groceries"}`
	req := authedRequest(http.MethodPost, "/", body)
	rr := httptest.NewRecorder()
	h.CreateTransaction(rr, req)

	if !svc.appendCalled {
		t.Fatal("expected Append to be called on service")
	}
	if svc.appendEmail != "a@x.com" {
		t.Fatalf("service received wrong email: %q", svc.appendEmail)
	}
	if svc.appendReq.Category != "Food" || svc.appendReq.Amount != "42.50" {
		t.Fatalf("service received wrong request: %+v", svc.appendReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatal("WriteSuccess not called with status 201")
	}
}

func TestCreateTransactionInvalidJSON(t *testing.T) {
	svc := &stubLedgerService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	req := authedRequest(http.MethodPost, "/", "not-json")
	rr := httptest.NewRecorder()
	h.CreateTransaction(rr, req)

	if svc.appendCalled {
		t.Fatal("Append should not be called when JSON is invalid")
	}
	if !resp.handleErrorCalled {
		t.Fatal("HandleError should be called on invalid JSON")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", resp.handleError)
	}
}

func TestDeleteTransaction(t *testing.T) {
	svc := &stubLedgerService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	req := withURLParam(authedRequest(http.MethodDelete, "/1700000000123", ""), "transactionId", "1700000000123")
	rr := httptest.NewRecorder()
	h.DeleteTransaction(rr, req)

	if !svc.removeCalled {
		t.Fatal("expected Remove to be called on service")
	}
	if svc.removeID != 1700000000123 {
		t.Fatalf("service received wrong id: %d", svc.removeID)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("WriteSuccess not called")
	}
}

func TestDeleteTransactionBadID(t *testing.T) {
	svc := &stubLedgerService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	req := withURLParam(authedRequest(http.MethodDelete, "/abc", ""), "transactionId", "abc")
	rr := httptest.NewRecorder()
	h.DeleteTransaction(rr, req)

	if svc.removeCalled {
		t.Fatal("Remove should not be called for a non-numeric id")
	}
	if !resp.handleErrorCalled {
		t.Fatal("HandleError should be called for a non-numeric id")
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	svc := &stubLedgerService{removeErr: errs.NewNotFoundError("transaction not found")}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: svc})

	req := withURLParam(authedRequest(http.MethodDelete, "/5", ""), "transactionId", "5")
	rr := httptest.NewRecorder()
	h.DeleteTransaction(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected handler to delegate the error")
	}
	if _, ok := resp.handleError.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on service error")
	}
}

func TestGetCategories(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, LedgerSvc: &stubLedgerService{}})

	req := authedRequest(http.MethodGet, "/categories", "")
	rr := httptest.NewRecorder()
	h.GetCategories(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("WriteSuccess not called")
	}
	lists, ok := resp.writeSuccessData.(map[string][]string)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessData)
	}
	if len(lists["income"]) == 0 || len(lists["expense"]) == 0 {
		t.Fatal("expected both category lists to be populated")
	}
}
