package asset

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/core"
)

// Slot names a texture used by the renderers
type Slot int

const (
	SlotGround Slot = iota
	SlotKnight
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotGround:
		return "ground"
	case SlotKnight:
		return "knight"
	default:
		return "unknown"
	}
}

// LoadState is the lifecycle of a texture slot
type LoadState int32

const (
	StateEmpty LoadState = iota
	StatePending
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "empty"
	}
}

// maxAssetBytes caps downloads and file reads
const maxAssetBytes = 8 << 20

type texture struct {
	state atomic.Int32
	img   atomic.Pointer[image.Image]
}

// Store holds textures loaded in the background
// Readers never block; a slot that is not ready returns nil and the renderer falls back
type Store struct {
	slots   [slotCount]texture
	sources [slotCount]string
	client  *http.Client
	logger  zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewStore creates an empty store
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// State reports the load state of a slot
func (s *Store) State(slot Slot) LoadState {
	if slot < 0 || slot >= slotCount {
		return StateEmpty
	}
	return LoadState(s.slots[slot].state.Load())
}

// Image returns the decoded texture or nil when not ready
func (s *Store) Image(slot Slot) image.Image {
	if s == nil || slot < 0 || slot >= slotCount {
		return nil
	}
	if p := s.slots[slot].img.Load(); p != nil {
		return *p
	}
	return nil
}

// Set installs an already decoded texture
func (s *Store) Set(slot Slot, img image.Image) {
	if slot < 0 || slot >= slotCount || img == nil {
		return
	}
	s.slots[slot].img.Store(&img)
	s.slots[slot].state.Store(int32(StateReady))
}

// Load starts fetching src into slot in the background
// src is a data URI, an http(s) URL or a file path; empty leaves the slot empty
func (s *Store) Load(ctx context.Context, slot Slot, src string) {
	if slot < 0 || slot >= slotCount || src == "" {
		return
	}
	t := &s.slots[slot]
	if !t.state.CompareAndSwap(int32(StateEmpty), int32(StatePending)) &&
		!t.state.CompareAndSwap(int32(StateFailed), int32(StatePending)) {
		return
	}

	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		img, err := s.fetch(ctx, src)
		if err != nil {
			t.state.Store(int32(StateFailed))
			s.logger.Warn().Err(err).Str("slot", slot.String()).Msg("texture load failed")
			return
		}
		t.img.Store(&img)
		t.state.Store(int32(StateReady))
		b := img.Bounds()
		s.logger.Debug().Str("slot", slot.String()).Int("w", b.Dx()).Int("h", b.Dy()).Msg("texture ready")
	})
}

// Wait blocks until all started loads finish
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) fetch(ctx context.Context, src string) (image.Image, error) {
	data, err := s.read(ctx, src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", describe(src), err)
	}
	return img, nil
}

func (s *Store) read(ctx context.Context, src string) ([]byte, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURI(src)

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", src, err)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))

	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open texture: %w", err)
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxAssetBytes))
	}
}

func decodeDataURI(src string) ([]byte, error) {
	comma := strings.IndexByte(src, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := src[len("data:"):comma], src[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("data URI payload: %w", err)
	}
	return data, nil
}

func describe(src string) string {
	if strings.HasPrefix(src, "data:") {
		return "data URI"
	}
	return src
}
