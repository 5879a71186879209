// Command alignd serves the seqalign library over a small REST API.
//
// It is a demonstration front-end only: every endpoint delegates to the
// public library API (align.Aligner.Global, protein.IsoelectricPoint) and
// holds no algorithmic logic of its own.
//
// Usage:
//
//	alignd [options]
//
// Options:
//
//	-port  Port to listen on (default: 8080)
//	-host  Host to bind to (default: localhost)
//
// Endpoints:
//
//	POST /align                     {"x":"ATGATGATG","y":"ATGAATG","gap_open":-5,"gap_extend":-1,"match":2,"mismatch":-1}
//	POST /protein/isoelectric-point {"sequence":"MAEGEITTF..."}
//	POST /protein/composition       {"sequence":"MAEGEITTF..."}
//	GET  /health
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/seqalign/api/handlers"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/align", handlers.GlobalAlignHandler)
	r.Route("/protein", func(r chi.Router) {
		r.Post("/isoelectric-point", handlers.IsoelectricPointHandler)
		r.Post("/composition", handlers.CompositionHandler)
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("alignd listening on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("could not listen on %s: %v", addr, err)
	}
}
