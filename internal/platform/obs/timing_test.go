package obs

import (
	"context"
	"errors"
	"testing"

	"logistik-dashboard/internal/platform/logger"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestID(ctx); got != "abc" {
		t.Fatalf("RequestID = %q, want abc", got)
	}

	ctx = WithRequestID(context.Background(), "")
	if got := RequestID(ctx); len(got) != 36 {
		t.Fatalf("generated RequestID = %q, want a UUID", got)
	}

	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID on bare context = %q, want empty", got)
	}
}

func TestTimeDoesNotTouchError(t *testing.T) {
	err := errors.New("boom")
	Time(context.Background(), logger.Nop(), "test.op")(&err)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("err = %v, want boom", err)
	}
	Time(context.Background(), logger.Nop(), "test.op")(nil)
}
