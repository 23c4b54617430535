// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ik5/wav2c/internal/wavtest"
)

func TestDecode_ValidMono16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	data := wavtest.PCMFile(1, 8000, 16, wavtest.Int16Bytes(samples))

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.Format.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", pcm.Format.SampleRate)
	}

	if pcm.Format.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", pcm.Format.NumChannels)
	}

	if pcm.Format.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", pcm.Format.BitsPerSample)
	}

	if pcm.SampleCount() != len(samples) {
		t.Errorf("SampleCount() = %d, want %d", pcm.SampleCount(), len(samples))
	}

	if !bytes.Equal(pcm.Data, wavtest.Int16Bytes(samples)) {
		t.Error("Data does not match the original payload")
	}
}

func TestDecode_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	data := wavtest.PCMFile(2, 44100, 16, wavtest.Int16Bytes(samples))

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.Format.NumChannels != 2 {
		t.Errorf("NumChannels = %d, want 2", pcm.Format.NumChannels)
	}

	if pcm.SampleCount() != 6 {
		t.Errorf("SampleCount() = %d, want 6", pcm.SampleCount())
	}
}

func TestDecode_8Bit(t *testing.T) {
	t.Parallel()

	payload := []byte{0, 64, 128, 192, 255}
	data := wavtest.PCMFile(1, 11025, 8, payload)

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.SampleCount() != 5 {
		t.Errorf("SampleCount() = %d, want 5", pcm.SampleCount())
	}

	if !bytes.Equal(pcm.Data, payload) {
		t.Error("Data does not match the original payload")
	}
}

func TestDecode_32Bit(t *testing.T) {
	t.Parallel()

	samples := []int32{1 << 20, -(1 << 20), 0}
	data := wavtest.PCMFile(1, 22050, 32, wavtest.Int32Bytes(samples))

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.Format.BitsPerSample != 32 {
		t.Errorf("BitsPerSample = %d, want 32", pcm.Format.BitsPerSample)
	}

	if pcm.SampleCount() != 3 {
		t.Errorf("SampleCount() = %d, want 3", pcm.SampleCount())
	}
}

func TestDecode_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	payload := wavtest.Int16Bytes([]int16{1, 2, 3})
	data := wavtest.Container(
		wavtest.Chunk{ID: "LIST", Data: []byte("INFOarbitrary metadata")},
		wavtest.FmtChunk(1, 1, 16000, 16),
		wavtest.Chunk{ID: "fact", Data: []byte{3, 0, 0, 0}},
		wavtest.Chunk{ID: "data", Data: payload},
	)

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if !bytes.Equal(pcm.Data, payload) {
		t.Error("Data does not match the original payload")
	}
}

func TestDecode_OddLengthChunkPadding(t *testing.T) {
	t.Parallel()

	// 5-byte chunk payload forces a pad byte before the next chunk header.
	payload := wavtest.Int16Bytes([]int16{-1, 1})
	data := wavtest.Container(
		wavtest.Chunk{ID: "junk", Data: []byte{1, 2, 3, 4, 5}},
		wavtest.FmtChunk(1, 1, 8000, 16),
		wavtest.Chunk{ID: "data", Data: payload},
	)

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if !bytes.Equal(pcm.Data, payload) {
		t.Error("Data does not match the original payload")
	}
}

func TestDecode_DataBeforeFmt(t *testing.T) {
	t.Parallel()

	payload := wavtest.Int16Bytes([]int16{7, 8})
	data := wavtest.Container(
		wavtest.Chunk{ID: "data", Data: payload},
		wavtest.FmtChunk(1, 1, 8000, 16),
	)

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.SampleCount() != 2 {
		t.Errorf("SampleCount() = %d, want 2", pcm.SampleCount())
	}
}

func TestDecode_EmptyDataChunk(t *testing.T) {
	t.Parallel()

	data := wavtest.PCMFile(1, 8000, 16, nil)

	pcm, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if pcm.SampleCount() != 0 {
		t.Errorf("SampleCount() = %d, want 0", pcm.SampleCount())
	}
}

func TestDecode_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	if err != ErrNotWavFile {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecode_InvalidWAVEMarker(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36))
	buf.WriteString("NOPE") // Invalid WAVE marker
	buf.Write(make([]byte, 36))

	_, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != ErrNotWavFile {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecode_FloatFormatRejected(t *testing.T) {
	t.Parallel()

	// Format tag 3 is IEEE float.
	data := wavtest.Container(
		wavtest.FmtChunk(3, 1, 44100, 32),
		wavtest.Chunk{ID: "data", Data: make([]byte, 8)},
	)

	_, err := Decode(bytes.NewReader(data))
	if err != ErrUnsupportedFormat {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_24BitRejected(t *testing.T) {
	t.Parallel()

	data := wavtest.Container(
		wavtest.FmtChunk(1, 1, 44100, 24),
		wavtest.Chunk{ID: "data", Data: make([]byte, 6)},
	)

	_, err := Decode(bytes.NewReader(data))
	if err != ErrUnsupportedFormat {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_ZeroChannelsRejected(t *testing.T) {
	t.Parallel()

	data := wavtest.Container(
		wavtest.FmtChunk(1, 0, 44100, 16),
		wavtest.Chunk{ID: "data", Data: make([]byte, 4)},
	)

	_, err := Decode(bytes.NewReader(data))
	if err != ErrUnsupportedFormat {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_MissingDataChunk(t *testing.T) {
	t.Parallel()

	data := wavtest.Container(wavtest.FmtChunk(1, 1, 8000, 16))

	_, err := Decode(bytes.NewReader(data))
	if err != ErrTruncatedFile {
		t.Errorf("Decode() error = %v, want ErrTruncatedFile", err)
	}
}

func TestDecode_MissingFmtChunk(t *testing.T) {
	t.Parallel()

	data := wavtest.Container(wavtest.Chunk{ID: "data", Data: make([]byte, 4)})

	_, err := Decode(bytes.NewReader(data))
	if err != ErrTruncatedFile {
		t.Errorf("Decode() error = %v, want ErrTruncatedFile", err)
	}
}

func TestDecode_TruncatedDataPayload(t *testing.T) {
	t.Parallel()

	full := wavtest.PCMFile(1, 8000, 16, wavtest.Int16Bytes([]int16{1, 2, 3, 4}))
	// Cut the stream in the middle of the data payload.
	truncated := full[:len(full)-3]

	_, err := Decode(bytes.NewReader(truncated))
	if err != ErrTruncatedFile {
		t.Errorf("Decode() error = %v, want ErrTruncatedFile", err)
	}
}

func TestDecode_MisalignedSampleData(t *testing.T) {
	t.Parallel()

	// Six bytes cannot hold whole stereo 16-bit frames (frame size 4).
	data := wavtest.Container(
		wavtest.FmtChunk(1, 2, 8000, 16),
		wavtest.Chunk{ID: "data", Data: make([]byte, 6)},
	)

	_, err := Decode(bytes.NewReader(data))
	if err != ErrMisalignedSampleData {
		t.Errorf("Decode() error = %v, want ErrMisalignedSampleData", err)
	}
}
