package limiters

import (
	"context"
	"io"

	"github.com/swell-scan/swell/utility"
	"github.com/wal-g/tracelog"
	"golang.org/x/time/rate"
)

// DefaultBurstSize is added on top of the per-second limit so that a single
// Read of a typical buffer size does not exceed the bucket.
const DefaultBurstSize = 64 << 10

// NewNetworkLimiter returns nil when bytesPerSecond is not positive.
func NewNetworkLimiter(bytesPerSecond int64) *rate.Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSecond), int(bytesPerSecond+DefaultBurstSize))
}

type Reader struct {
	reader  io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func NewReader(ctx context.Context, reader io.Reader, limiter *rate.Limiter) *Reader {
	return &Reader{
		reader:  reader,
		limiter: limiter,
		ctx:     ctx,
	}
}

func (r *Reader) Read(buf []byte) (int, error) {
	end := len(buf)
	if r.limiter.Burst() < end {
		end = r.limiter.Burst()
	}
	n, err := r.reader.Read(buf[:end])

	if err != nil {
		limiterErr := r.limiter.WaitN(r.ctx, utility.Max(n, 0))
		if limiterErr != nil {
			tracelog.ErrorLogger.Printf("Error happened while limiting: %+v\n", limiterErr)
		}
		return n, err
	}

	err = r.limiter.WaitN(r.ctx, n)
	return n, err
}
