package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type recordingStore struct {
	mu      sync.Mutex
	initial Collection
	saved   []Collection
	saveErr error
}

func (r *recordingStore) Load(context.Context) Collection {
	return cloneCollection(r.initial)
}

func (r *recordingStore) Save(_ context.Context, c Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, cloneCollection(c))
	return r.saveErr
}

func (r *recordingStore) saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *recordingStore) last() Collection {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

type stubWriter struct {
	bio      GeneratedText
	enhance  GeneratedText
	bioCalls int
	// beforeReturn は生成完了前に呼ばれ、生成中の状態変化を再現します。
	beforeReturn func()
}

func (w *stubWriter) Bio(context.Context, Employee) GeneratedText {
	w.bioCalls++
	if w.beforeReturn != nil {
		w.beforeReturn()
	}
	return w.bio
}

func (w *stubWriter) Enhance(_ context.Context, raw string, _ HistoryType) GeneratedText {
	if w.beforeReturn != nil {
		w.beforeReturn()
	}
	if w.enhance.Fallback {
		return GeneratedText{Text: raw, Fallback: true}
	}
	return w.enhance
}

type failingBlob struct{}

func (failingBlob) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage offline")
}

func (failingBlob) Put(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestService(t interface{ Helper() }, store Store, writer Writer) *Service {
	t.Helper()
	seq := 0
	return NewService(context.Background(), store, writer,
		WithClock(&stubClock{now: fixedNow}),
		WithLogger(quietLogger()),
		WithRecordIDGenerator(func() string {
			seq++
			return fmt.Sprintf("rec-%d", seq)
		}),
	)
}
