package environment

import (
	"os"
	"strconv"
	"strings"
)

func Debug() bool {
	return os.Getenv("DEBUG") == "true"
}

func TraceEnabled() bool {
	return os.Getenv("TRACE") == "true"
}

func TraceEndpoint() string {
	endpoint, ok := os.LookupEnv("TRACE_ENDPOINT")
	if !ok {
		endpoint = "http://jaeger.cluster/api/traces"
	}
	return endpoint
}

// NotifyAddr returns the configured endpoint for a notifier type,
// e.g. NOTIFY_PUBHASHBLOCK=localhost:8080.
func NotifyAddr(kind string) (string, bool) {
	return os.LookupEnv("NOTIFY_" + strings.ToUpper(kind))
}

// NotifyHWM returns the outbound message high-water mark for publishers,
// in events per second.
func NotifyHWM() int {
	hwm, err := strconv.Atoi(os.Getenv("NOTIFY_HWM"))
	if err != nil || hwm <= 0 {
		return 1000
	}
	return hwm
}

func RPCAddr() string {
	addr, ok := os.LookupEnv("RPC_ADDR")
	if !ok {
		addr = ":8080"
	}
	return addr
}
