// This file is part of Phosphor.
//
// Phosphor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphor.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/asticode/go-astiav"
	"github.com/tubeglow/phosphor/capture"
	"github.com/tubeglow/phosphor/logger"
	"github.com/tubeglow/phosphor/slot"
)

// the categories of fatal pipeline failure. errors returned by Run wrap one
// of these and can be tested with errors.Is()
var (
	ErrOpen    = errors.New("device open")
	ErrRead    = errors.New("packet read")
	ErrDecode  = errors.New("decode")
	ErrConvert = errors.New("conversion")
)

// errStreamEnded marks the natural end of the capture stream (device
// disconnect or EOF). it ends the reader's poll loop but it is not fatal;
// the decode loop keeps running, serving whatever frame was last decoded,
// until the owner raises the stop signal
var errStreamEnded = errors.New("capture stream ended")

// readerExit interprets the result of the reader's poll loop. a natural end
// of stream is a silent exit; anything else is fatal to the run.
func readerExit(err error) error {
	if errors.Is(err, errStreamEnded) {
		return nil
	}
	return err
}

// FFmpeg device registration is process-global and idempotent but not
// documented as goroutine-safe
var registerDevices sync.Once

// Run opens the capture device described by cfg and runs the pipeline until
// the stop signal is raised or a fatal error occurs. Decoded RGB frames are
// delivered through sink. Run is synchronous; the caller decides which
// goroutine it occupies.
//
// Packets are read from the device on a dedicated goroutine so that a slow
// decode never causes the device's own buffers to back up. The reader is
// always joined before the demuxer is released, whichever side fails first.
func Run(cfg capture.Config, sink capture.FrameSink, stop *capture.StopSignal) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	registerDevices.Do(astiav.RegisterAllDevices)

	inputFormat := astiav.FindInputFormat("v4l2")
	if inputFormat == nil {
		return fmt.Errorf("pipeline: %w: v4l2 demuxer not available", ErrOpen)
	}

	opts := astiav.NewDictionary()
	defer opts.Free()
	for k, v := range cfg.OpenOptions() {
		if err := opts.Set(k, v, astiav.NewDictionaryFlags()); err != nil {
			return fmt.Errorf("pipeline: %w: option %s: %w", ErrOpen, k, err)
		}
	}

	demux := astiav.AllocFormatContext()
	if demux == nil {
		return fmt.Errorf("pipeline: %w: cannot allocate format context", ErrOpen)
	}
	defer demux.Free()

	if err := demux.OpenInput(cfg.Device, inputFormat, opts); err != nil {
		return fmt.Errorf("pipeline: %w: %s: %w", ErrOpen, cfg.Device, err)
	}
	defer demux.CloseInput()

	if err := demux.FindStreamInfo(nil); err != nil {
		return fmt.Errorf("pipeline: %w: %w", ErrOpen, err)
	}

	var stream *astiav.Stream
	for _, s := range demux.Streams() {
		if s.CodecParameters().MediaType() == astiav.MediaTypeVideo {
			stream = s
			break
		}
	}
	if stream == nil {
		return fmt.Errorf("pipeline: %w: %s: no video stream", ErrOpen, cfg.Device)
	}

	codec := astiav.FindDecoder(stream.CodecParameters().CodecID())
	if codec == nil {
		return fmt.Errorf("pipeline: %w: no decoder for %s", ErrOpen,
			stream.CodecParameters().CodecID())
	}

	dec := astiav.AllocCodecContext(codec)
	if dec == nil {
		return fmt.Errorf("pipeline: %w: cannot allocate codec context", ErrOpen)
	}
	defer dec.Free()

	if err := stream.CodecParameters().ToCodecContext(dec); err != nil {
		return fmt.Errorf("pipeline: %w: %w", ErrOpen, err)
	}

	if err := dec.Open(codec, nil); err != nil {
		return fmt.Errorf("pipeline: %w: %w", ErrOpen, err)
	}

	logger.Logf(logger.Allow, "pipeline", "opened %s (%s %dx%d @ %d fps)",
		cfg.Device, cfg.Format.NormalizedTag(), cfg.Width, cfg.Height, cfg.Framerate)

	packets := slot.New[*astiav.Packet]()

	// working packet/frame for the two loops. each iteration Unrefs after
	// use so the underlying buffers are recycled
	pkt := astiav.AllocPacket()
	defer pkt.Free()
	frm := astiav.AllocFrame()
	defer frm.Free()

	// any leftover packet in the slot is C-allocated and must be released
	// once both loops have ended
	defer func() {
		if p, ok := packets.TryRecv(); ok {
			p.Free()
		}
	}()

	var wg sync.WaitGroup
	var readErr error

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := readerExit(pollLoop(stop, readerStep(demux, stream, pkt, packets))); err != nil {
			readErr = err

			// the decode loop has no further input after a reader failure
			// and must end too. a natural end of stream does NOT raise the
			// signal; the decode loop keeps polling until the owner stops
			// the run
			stop.Stop()
		}
	}()

	// the reader goroutine holds references into the demuxer. join it
	// before the deferred CloseInput above runs
	defer wg.Wait()
	defer stop.Stop()

	conv := &converter{}
	defer conv.free()

	err := pollLoop(stop, decodeStep(dec, frm, packets, conv, sink))
	if err != nil {
		return err
	}

	// stop.Stop() has not run yet so the reader may still be mid
	// iteration. raise the signal and join before inspecting its error
	stop.Stop()
	wg.Wait()

	if readErr != nil {
		return readErr
	}

	logger.Logf(logger.Allow, "pipeline", "stopped (%d packets, %d frames displaced)",
		packets.Displaced(), sinkDisplaced(sink))

	return nil
}

// readerStep returns the poll function for the packet reader. each
// iteration reads one packet from the demuxer and, if it belongs to the
// video stream, publishes a clone into the packet slot. a packet displaced
// from the slot was never decoded; it is freed and forgotten.
func readerStep(demux *astiav.FormatContext, stream *astiav.Stream, pkt *astiav.Packet, packets *slot.Slot[*astiav.Packet]) func() (bool, error) {
	return func() (bool, error) {
		if err := demux.ReadFrame(pkt); err != nil {
			if errors.Is(err, astiav.ErrEagain) {
				return false, nil
			}
			if errors.Is(err, astiav.ErrEof) {
				logger.Logf(logger.Allow, "pipeline", "capture stream ended")
				return false, errStreamEnded
			}
			return false, fmt.Errorf("pipeline: %w: %w", ErrRead, err)
		}
		defer pkt.Unref()

		if pkt.StreamIndex() != stream.Index() {
			return true, nil
		}

		if displaced, ok := packets.Publish(pkt.Clone()); ok {
			displaced.Free()
		}

		return true, nil
	}
}

// decodeStep returns the poll function for the decode loop. each iteration
// collects the current packet, if there is one, sends it to the decoder and
// drains every frame the decoder has ready. frames are converted to RGB and
// published to the sink; a frame displaced from the sink is ordinary memory
// and needs no release.
func decodeStep(dec *astiav.CodecContext, frm *astiav.Frame, packets *slot.Slot[*astiav.Packet], conv *converter, sink capture.FrameSink) func() (bool, error) {
	return func() (bool, error) {
		pkt, ok := packets.TryRecv()
		if !ok {
			return false, nil
		}

		err := dec.SendPacket(pkt)
		pkt.Free()
		if err != nil && !errors.Is(err, astiav.ErrEagain) {
			return false, fmt.Errorf("pipeline: %w: %w", ErrDecode, err)
		}

		for {
			if err := dec.ReceiveFrame(frm); err != nil {
				if errors.Is(err, astiav.ErrEagain) || errors.Is(err, astiav.ErrEof) {
					break
				}
				return false, fmt.Errorf("pipeline: %w: %w", ErrDecode, err)
			}

			f, err := conv.convert(frm)
			frm.Unref()
			if err != nil {
				return false, err
			}

			_, _ = sink.Publish(f)
		}

		return true, nil
	}
}

// sinkDisplaced reports the sink's displacement count when the sink is a
// slot, which it is in normal use. other sinks report zero.
func sinkDisplaced(sink capture.FrameSink) uint64 {
	if s, ok := sink.(*slot.Slot[*capture.Frame]); ok {
		return s.Displaced()
	}
	return 0
}
