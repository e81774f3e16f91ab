// Command bgcli finds every dictionary word on a Boggle board.
//
// Rows may be given as arguments or typed at the prompt:
//
//	bgcli star enil doet qake
//	bgcli --dict words.txt --sep ,
//	bgcli words star enil doet qake
//
// A "q" tile stands for "Qu".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
