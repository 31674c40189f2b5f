// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithBackoff runs a catalog fetch up to maxAttempts times,
// doubling the delay between attempts starting from baseDelay. The
// error from the final attempt is returned when every attempt fails.
// Cancelling the context aborts both the fetch loop and any in-flight
// backoff sleep.
func RetryWithBackoff(ctx context.Context, logger *slog.Logger, fetch func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}

	delay := baseDelay
	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fetch()
		if lastErr == nil {
			if attempt > 1 {
				logger.Debug("fetch succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt == maxAttempts {
			return lastErr
		}
		logger.Debug("fetch failed, backing off",
			"attempt", attempt,
			"maxAttempts", maxAttempts,
			"delay", delay,
			"error", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
