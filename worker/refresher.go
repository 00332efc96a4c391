package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ainews-journalist/internal/model"
	"ainews-journalist/internal/storage"
)

// DocumentBuilder produces one document per call. *pipeline.Builder implements it.
type DocumentBuilder interface {
	Build(ctx context.Context) (model.NewsDocument, error)
}

// Refresher rebuilds the document on an interval and hands it to every sink.
type Refresher struct {
	Builder  DocumentBuilder
	Sinks    []storage.Sink
	Interval time.Duration
}

func (w *Refresher) Name() string { return "refresher" }

func (w *Refresher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = time.Hour
	}

	// initial run
	w.RunOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce builds a document and saves it. It returns the number of sinks
// that accepted it.
func (w *Refresher) RunOnce(ctx context.Context) int {
	doc, err := w.Builder.Build(ctx)
	if err != nil {
		slog.Error("refresher: build failed", "error", err)
		return 0
	}
	saved := 0
	for _, s := range w.Sinks {
		if err := s.Save(ctx, doc); err != nil {
			slog.Error("refresher: save failed", "sink", sinkName(s), "error", err)
			continue
		}
		saved++
	}
	slog.Info("refresher: document refreshed", "source", doc.Source, "total_news", doc.TotalNews, "sinks", saved)
	return saved
}

func sinkName(s storage.Sink) string {
	return fmt.Sprintf("%T", s)
}
