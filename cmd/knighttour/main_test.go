package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"knight-tables/attacks"
	"knight-tables/tour"
)

func TestInterruptedRunIsNotAFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	cfg := tour.Config{Options: tour.Options{Closed: true}, Starts: []attacks.Square{0}}
	_, err := tour.Run(ctx, attacks.KnightAttacks, cfg, io.Discard)
	if err == nil {
		t.Fatal("expected the expired run to report its deadline")
	}
	if !interrupted(err) {
		t.Fatalf("interrupted(%v) = false", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	_, err = tour.Run(ctx, attacks.KnightAttacks, cfg, io.Discard)
	if !interrupted(err) {
		t.Fatalf("interrupted(%v) = false", err)
	}
}

func TestSearchFailureIsNotInterrupted(t *testing.T) {
	for _, err := range []error{errors.New("write tour: broken pipe"), tour.ErrInvalidTour, nil} {
		if interrupted(err) {
			t.Errorf("interrupted(%v) = true", err)
		}
	}
}
