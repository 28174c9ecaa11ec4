package app

import (
	"context"
	"sync"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/eventlog"
)

// fakeStore implements OrderStore, recording every call.
type fakeStore struct {
	mu          sync.Mutex
	records     map[string]domain.OrderRecord
	saved       []domain.OrderRecord
	transitions []domain.OrderRecord

	saveErr       error
	getErr        error
	transitionErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]domain.OrderRecord)}
}

func (f *fakeStore) SaveOrder(_ context.Context, rec domain.OrderRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	f.records[rec.OrderID] = rec
	return nil
}

func (f *fakeStore) GetOrder(_ context.Context, orderID string) (*domain.OrderRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[orderID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) TransitionOrder(_ context.Context, rec domain.OrderRecord, _ domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.transitionErr != nil {
		return f.transitionErr
	}
	f.transitions = append(f.transitions, rec)
	f.records[rec.OrderID] = rec
	return nil
}

type notifyCall struct {
	orderID string
	amount  float64
}

// fakeNotifier implements Notifier, recording every call.
type fakeNotifier struct {
	newOrders []notifyCall
	refunds   []notifyCall

	newOrderErr error
	refundErr   error
}

func (f *fakeNotifier) NotifyNewOrder(_ context.Context, orderID string, total float64) error {
	if f.newOrderErr != nil {
		return f.newOrderErr
	}
	f.newOrders = append(f.newOrders, notifyCall{orderID: orderID, amount: total})
	return nil
}

func (f *fakeNotifier) NotifyRefund(_ context.Context, orderID string, amount float64) error {
	if f.refundErr != nil {
		return f.refundErr
	}
	f.refunds = append(f.refunds, notifyCall{orderID: orderID, amount: amount})
	return nil
}

// fakeEventLog implements eventlog.Repository.
type fakeEventLog struct {
	entries []eventlog.Entry
	saveErr error
}

func (f *fakeEventLog) Save(_ context.Context, entry *eventlog.Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}
