package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/rl1809/kata/internal/adapter/handler"
)

type result struct {
	fulfilled   int32
	rejected    int32
	failed      int32
	earlyResult int32 // fulfilled before the delay
	lateReject  int32 // rejected after the delay
	elapsed     time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr  string
		total int
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:          "loadgen",
		Short:        "Fire concurrent Square calls at a running kata server and check the timing contract",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("create client: %w", err)
			}
			defer conn.Close()

			logger.Info("starting load", zap.String("addr", addr), zap.Int("requests", total))
			res := run(cmd.Context(), handler.NewKataClient(conn), total, delay)
			if !report(cmd.OutOrStdout(), res, total, delay) {
				return errors.New("load check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:50051", "gRPC address of kata serve")
	cmd.Flags().IntVarP(&total, "requests", "n", 50, "number of concurrent Square calls")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "delay the server is configured with")
	return cmd
}

// run fires total calls; call i squares i - total/2, so roughly half the
// inputs are non-positive and must be rejected without waiting.
func run(ctx context.Context, client *handler.KataClient, total int, delay time.Duration) result {
	var fulfilled, rejected, failed, early, late atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(n float64) {
			defer wg.Done()

			callStart := time.Now()
			got, err := client.Square(ctx, n)
			took := time.Since(callStart)

			switch {
			case err == nil && got == n*n:
				fulfilled.Add(1)
				if took < delay {
					early.Add(1)
				}
			case status.Code(err) == codes.InvalidArgument:
				rejected.Add(1)
				if took >= delay {
					late.Add(1)
				}
			default:
				failed.Add(1)
				if err == nil {
					err = errors.New("wrong result")
				}
				fmt.Fprintf(os.Stderr, "square(%v): %v\n", n, err)
			}
		}(float64(i - total/2))
	}

	wg.Wait()
	return result{
		fulfilled:   fulfilled.Load(),
		rejected:    rejected.Load(),
		failed:      failed.Load(),
		earlyResult: early.Load(),
		lateReject:  late.Load(),
		elapsed:     time.Since(start),
	}
}

func report(w io.Writer, res result, total int, delay time.Duration) bool {
	wantRejected := int32(total/2 + 1)
	if total == 0 {
		wantRejected = 0
	}
	wantFulfilled := int32(total) - wantRejected

	fmt.Fprintln(w, "========== SQUARE LOAD RESULTS ==========")
	fmt.Fprintf(w, "Total Requests:   %d\n", total)
	fmt.Fprintf(w, "Fulfilled:        %d\n", res.fulfilled)
	fmt.Fprintf(w, "Rejected:         %d\n", res.rejected)
	fmt.Fprintf(w, "Failed:           %d\n", res.failed)
	fmt.Fprintf(w, "Duration:         %v\n", res.elapsed)
	fmt.Fprintln(w, "==========================================")

	ok := true
	if res.fulfilled == wantFulfilled && res.rejected == wantRejected && res.failed == 0 {
		fmt.Fprintf(w, "PASS: %d fulfilled, %d rejected\n", wantFulfilled, wantRejected)
	} else {
		fmt.Fprintf(w, "FAIL: Expected %d fulfilled/%d rejected, got %d/%d (%d failed)\n",
			wantFulfilled, wantRejected, res.fulfilled, res.rejected, res.failed)
		ok = false
	}

	if res.earlyResult == 0 && res.lateReject == 0 {
		fmt.Fprintf(w, "PASS: results waited for %v, rejections did not\n", delay)
	} else {
		fmt.Fprintf(w, "FAIL: %d results arrived early, %d rejections arrived late\n", res.earlyResult, res.lateReject)
		ok = false
	}
	return ok
}
