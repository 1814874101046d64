package view

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
)

func fills(r *recording.Recording) []recording.FillPathCommand {
	var out []recording.FillPathCommand
	for _, cmd := range r.Commands() {
		if f, ok := cmd.(recording.FillPathCommand); ok {
			out = append(out, f)
		}
	}
	return out
}

func countType(r *recording.Recording, typ recording.CommandType) int {
	var n int
	for _, cmd := range r.Commands() {
		if cmd.Type() == typ {
			n++
		}
	}
	return n
}

func fillColor(t *testing.T, r *recording.Recording, f recording.FillPathCommand) gg.RGBA {
	t.Helper()
	b, ok := r.Resources().GetBrush(f.Brush).(recording.SolidBrush)
	if !ok {
		t.Fatalf("brush is %T, want SolidBrush", r.Resources().GetBrush(f.Brush))
	}
	return b.Color
}

func mustRecord(t *testing.T, v View, opts ...RenderOption) *recording.Recording {
	t.Helper()
	r, err := Record(v, opts...)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	return r
}

func TestFit(t *testing.T) {
	l, err := Fit(box(10.5, 20), WithPadding(2))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if l.Width != 15 || l.Height != 24 {
		t.Errorf("canvas = %dx%d, want 15x24", l.Width, l.Height)
	}
	if !rectNear(l.Frame, shape.R(2, 2, 10.5, 20)) {
		t.Errorf("frame = %v", l.Frame)
	}
}

func TestFitWithProposal(t *testing.T) {
	l, err := Fit(Fill(shape.Rectangle{}, gg.Black), WithProposal(30, 40))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if l.Width != 30 || l.Height != 40 {
		t.Errorf("canvas = %dx%d, want 30x40", l.Width, l.Height)
	}
}

func TestRecordEmptyView(t *testing.T) {
	tests := []struct {
		name string
		v    View
	}{
		{"empty", Empty{}},
		{"unbounded shape", Fill(shape.Rectangle{}, gg.Black)},
		{"zero height", box(10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Record(tt.v); !errors.Is(err, ErrEmptyView) {
				t.Errorf("Record error = %v, want ErrEmptyView", err)
			}
			if _, err := Snapshot(tt.v); !errors.Is(err, ErrEmptyView) {
				t.Errorf("Snapshot error = %v, want ErrEmptyView", err)
			}
		})
	}
}

func TestRecordFill(t *testing.T) {
	red := gg.RGBA{R: 1, A: 1}
	r := mustRecord(t, Modify(Fill(shape.Rectangle{}, red)).Frame(10, 10, Center), WithPadding(2))

	if r.Width() != 14 || r.Height() != 14 {
		t.Errorf("recording = %dx%d, want 14x14", r.Width(), r.Height())
	}
	fs := fills(r)
	if len(fs) != 1 {
		t.Fatalf("got %d fills, want 1", len(fs))
	}
	bb := r.Resources().GetPath(fs[0].Path).BoundingBox()
	if !rectNear(bb, shape.R(2, 2, 10, 10)) {
		t.Errorf("fill bounds = %v", bb)
	}
	if c := fillColor(t, r, fs[0]); c != red {
		t.Errorf("fill color = %+v", c)
	}
}

func TestRecordBackground(t *testing.T) {
	r := mustRecord(t, box(10, 10), WithBackground(gg.White), WithPadding(5))
	fs := fills(r)
	if len(fs) != 2 {
		t.Fatalf("got %d fills, want background and box", len(fs))
	}
	bb := r.Resources().GetPath(fs[0].Path).BoundingBox()
	if !rectNear(bb, shape.R(0, 0, 20, 20)) {
		t.Errorf("background bounds = %v, want the whole canvas", bb)
	}
}

func TestOpacityMultiplies(t *testing.T) {
	v := Modify(box(10, 10)).Opacity(0.5).Opacity(0.5)
	r := mustRecord(t, v)
	fs := fills(r)
	if len(fs) != 1 {
		t.Fatalf("got %d fills", len(fs))
	}
	if a := fillColor(t, r, fs[0]).A; !near(a, 0.25) {
		t.Errorf("alpha = %v, want 0.25", a)
	}

	if got := fills(mustRecord(t, Modify(box(10, 10)).Opacity(0))); len(got) != 0 {
		t.Errorf("transparent view recorded %d fills", len(got))
	}
}

func TestRotationAboutAnchor(t *testing.T) {
	// A 10x20 box turned a quarter clockwise about its top-left corner
	// swings to the left of the anchor.
	inner := Rotated{Content: box(10, 20), Angle: math.Pi / 2, Anchor: NW}
	rec := recording.NewRecorder(100, 100)
	Draw(rec, inner, shape.R(50, 50, 10, 20))
	r := rec.FinishRecording()

	fs := fills(r)
	if len(fs) != 1 {
		t.Fatalf("got %d fills", len(fs))
	}
	bb := r.Resources().GetPath(fs[0].Path).BoundingBox()
	const eps = 1e-6
	if math.Abs(bb.Min.X-30) > eps || math.Abs(bb.Max.X-50) > eps ||
		math.Abs(bb.Min.Y-50) > eps || math.Abs(bb.Max.Y-60) > eps {
		t.Errorf("rotated bounds = %v, want (30,50)-(50,60)", bb)
	}
	if countType(r, recording.CmdSave) != 1 || countType(r, recording.CmdRestore) != 1 {
		t.Error("rotation is not isolated by Save/Restore")
	}
}

func TestZeroRotationIsNotIsolated(t *testing.T) {
	r := mustRecord(t, Modify(box(10, 10)).Rotation(0, Center))
	if countType(r, recording.CmdSave) != 0 || countType(r, recording.CmdSetTransform) != 0 {
		t.Error("zero rotation emitted state commands")
	}
}

func TestClipRecordsClip(t *testing.T) {
	r := mustRecord(t, Modify(box(250, 70)).Clip(shape.NewFolder(25)))
	if n := countType(r, recording.CmdSetClip); n != 1 {
		t.Errorf("got %d clips, want 1", n)
	}
	if countType(r, recording.CmdSave) != 1 || countType(r, recording.CmdRestore) != 1 {
		t.Error("clip is not isolated by Save/Restore")
	}
}

func TestClipWarnsOnMalformedFolder(t *testing.T) {
	var buf bytes.Buffer
	folderview.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { folderview.SetLogger(nil) })

	mustRecord(t, Modify(box(200, 100)).Clip(shape.NewFolder(20)))
	if buf.Len() != 0 {
		t.Fatalf("valid folder logged: %s", buf.String())
	}

	mustRecord(t, Modify(box(200, 100)).Clip(shape.NewFolder(80)))
	if !strings.Contains(buf.String(), "malformed") {
		t.Errorf("no warning for oversized corner radius, log: %q", buf.String())
	}
}

func TestShadowDrawnBehindContent(t *testing.T) {
	s := canvas.Shadow{Color: gg.RGBA2(0, 0, 0, 0.25), Radius: 4}
	r := mustRecord(t, Modify(box(20, 20)).Shadow(s, shape.RoundedRect{Radius: 5}), WithPadding(8))

	fs := fills(r)
	layers := canvas.ShadowLayers(s)
	if len(fs) != layers+1 {
		t.Fatalf("got %d fills, want %d shadow layers and the content", len(fs), layers)
	}
	if c := fillColor(t, r, fs[len(fs)-1]); c != gg.Black {
		t.Errorf("last fill = %+v, want the content on top", c)
	}
}

func TestTextRecordedAtBaseline(t *testing.T) {
	face := loadFace(t, 20)
	r := mustRecord(t, Label("Personal", face, gg.Black), WithPadding(3))

	var texts []recording.DrawTextCommand
	for _, cmd := range r.Commands() {
		if dt, ok := cmd.(recording.DrawTextCommand); ok {
			texts = append(texts, dt)
		}
	}
	if len(texts) != 1 {
		t.Fatalf("got %d text commands, want 1", len(texts))
	}
	if texts[0].Text != "Personal" || !near(texts[0].X, 3) || !near(texts[0].Y, 3+face.Metrics().Ascent) {
		t.Errorf("text = %+v", texts[0])
	}
}

func TestSnapshotPixels(t *testing.T) {
	red := gg.RGBA{R: 1, A: 1}
	dc, err := Snapshot(Modify(Fill(shape.Rectangle{}, red)).Frame(10, 10, Center),
		WithPadding(5), WithBackground(gg.White))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	img := dc.Image()
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("image = %v, want 20x20", b)
	}
	if r, g, _, _ := img.At(10, 10).RGBA(); r>>8 < 250 || g>>8 > 5 {
		t.Errorf("center pixel = %v, want red", img.At(10, 10))
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("padding pixel = %v, want white", img.At(1, 1))
	}
}

func TestPlayback(t *testing.T) {
	blue := gg.RGBA{B: 1, A: 1}
	r := mustRecord(t, Modify(Fill(shape.Rectangle{}, blue)).Frame(10, 10, Center), WithPadding(5))
	b, err := Playback(r)
	if err != nil {
		t.Fatalf("Playback: %v", err)
	}
	img := b.Image()
	if _, _, bl, a := img.At(10, 10).RGBA(); bl>>8 < 250 || a>>8 < 250 {
		t.Errorf("center pixel = %v, want blue", img.At(10, 10))
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("padding pixel = %v, want transparent", img.At(1, 1))
	}
}
