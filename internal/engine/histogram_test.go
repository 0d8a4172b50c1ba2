package engine

import "testing"

func sumBins(bins [256]uint32) uint64 {
	var total uint64
	for _, n := range bins {
		total += uint64(n)
	}
	return total
}

func TestGenerate_Conservation(t *testing.T) {
	buf := gradientBuffer(64, 48)
	h, err := Generate(buf)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := uint64(64 * 48)
	for name, bins := range map[string][256]uint32{
		"red": h.Red, "green": h.Green, "blue": h.Blue, "luminance": h.Luminance,
	} {
		if got := sumBins(bins); got != want {
			t.Errorf("%s bins sum to %d, want %d", name, got, want)
		}
	}
}

func TestGenerate_KnownCounts(t *testing.T) {
	buf := solidBuffer(10, 10, 255, 0, 0, 255)
	h, err := Generate(buf)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if h.Red[255] != 100 {
		t.Errorf("red[255]: got %d, want 100", h.Red[255])
	}
	if h.Green[0] != 100 || h.Blue[0] != 100 {
		t.Errorf("green[0]/blue[0]: got %d/%d, want 100/100", h.Green[0], h.Blue[0])
	}
	// 0.299 * 255 rounds to 76.
	if h.Luminance[76] != 100 {
		t.Errorf("luminance[76]: got %d, want 100", h.Luminance[76])
	}
}

func TestGenerate_LuminanceClamp(t *testing.T) {
	buf := solidBuffer(2, 2, 255, 255, 255, 255)
	h, err := Generate(buf)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if h.Luminance[255] != 4 {
		t.Errorf("white luminance bin: got %d, want 4", h.Luminance[255])
	}
}

func TestGenerate_RejectsBadBuffer(t *testing.T) {
	if _, err := Generate(nil); err == nil {
		t.Error("nil buffer accepted")
	}
	if _, err := Generate(&Buffer{Width: 2, Height: 2, Pix: make([]uint8, 3)}); err == nil {
		t.Error("malformed buffer accepted")
	}
}

func TestToneDistribution(t *testing.T) {
	// Half dark pixels, half bright: no midtones.
	pix := make([]uint8, 8*4)
	for i := 0; i < 4; i++ {
		pix[i*4+3] = 255 // dark pixel, RGB zero
	}
	for i := 4; i < 8; i++ {
		pix[i*4] = 255
		pix[i*4+1] = 255
		pix[i*4+2] = 255
		pix[i*4+3] = 255
	}
	buf := &Buffer{Width: 8, Height: 1, Pix: pix}

	h, err := Generate(buf)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	shadows, midtones, highlights := h.ToneDistribution()
	if shadows != 4 || midtones != 0 || highlights != 4 {
		t.Errorf("got %d/%d/%d, want 4/0/4", shadows, midtones, highlights)
	}
	if shadows+midtones+highlights != 8 {
		t.Error("tone distribution does not cover all pixels")
	}
}
