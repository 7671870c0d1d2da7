package fakes

import (
	"context"
	"fmt"
	"sync"
)

type MockLogger struct {
	mu            sync.Mutex
	infoCalled    bool
	warningCalled bool
	errorCalled   bool
	lastMsg       string
}

func (l *MockLogger) Info(ctx context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoCalled = true
	l.lastMsg = fmt.Sprintf(format, args...)
}

func (l *MockLogger) Warning(ctx context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningCalled = true
	l.lastMsg = fmt.Sprintf(format, args...)
}

func (l *MockLogger) Error(ctx context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorCalled = true
	l.lastMsg = fmt.Sprintf(format, args...)
}

func (l *MockLogger) InfoCalled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.infoCalled
}

func (l *MockLogger) WarningCalled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warningCalled
}

func (l *MockLogger) ErrorCalled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorCalled
}

func (l *MockLogger) LastMsg() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastMsg
}
