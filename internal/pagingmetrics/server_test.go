package pagingmetrics_test

import (
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/gsm-bts/pager/internal/pagingmetrics"
)

func TestServeMetricsPortInUseReturnsError(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	err = pagingmetrics.ServeMetrics("127.0.0.1", port)
	if err == nil {
		t.Fatal("expected error when port is already in use, got nil")
	}

	expectedAddr := "127.0.0.1:" + strconv.Itoa(port)
	if !strings.Contains(err.Error(), expectedAddr) {
		t.Errorf("expected error to mention address %q, got: %v", expectedAddr, err)
	}
}
