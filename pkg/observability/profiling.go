package observability

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	log "github.com/sirupsen/logrus"
)

// StartProfiling exposes the pprof HTTP endpoints when
// BIBLIOTECA_PPROF_ADDR is set (for example "localhost:6060").
// It is a no-op otherwise so production deployments opt in explicitly.
func StartProfiling(service string) {
	addr := os.Getenv("BIBLIOTECA_PPROF_ADDR")
	if addr == "" {
		return
	}
	go func() {
		log.Infof("pprof listening service=%s address=%s", service, addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Warnf("pprof server exited service=%s error=%v", service, err)
		}
	}()
}
