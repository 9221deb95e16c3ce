package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	algodispatch "github.com/cwbudde/algo-dispatch"
)

// userFft1024 is the demo's custom backend: limited to length-1024
// transforms of interleaved contiguous data, it "computes" the transform
// by multiplying every element with the scale factor, printing marker
// lines so the dispatch decision is visible on the console.
type userFft1024 struct {
	scale complex64
}

func newUserFft1024(dom algodispatch.Domain, scale complex64) *userFft1024 {
	fmt.Printf("fftdispatch: user backend constructed (n=%d)\n", dom.Size())
	return &userFft1024{scale: scale}
}

func (b *userFft1024) Capabilities() algodispatch.Capability {
	return algodispatch.CapInPlace | algodispatch.CapOutOfPlace
}

func (b *userFft1024) InPlace(data []complex64, stride, length int) {
	fmt.Println("fftdispatch: user in_place called")

	for i := range length {
		data[i*stride] *= b.scale
	}
}

func (b *userFft1024) OutOfPlace(in []complex64, inStride int, out []complex64, outStride int, length int) {
	fmt.Println("fftdispatch: user out_of_place called")

	for i := range length {
		out[i*outStride] = in[i*inStride] * b.scale
	}
}

func (b *userFft1024) QueryLayout(inout *algodispatch.Layout) {
	inout.Packing = algodispatch.Contiguous
	inout.StorageFormat = algodispatch.Interleaved
}

func (b *userFft1024) QueryLayout2(in, out *algodispatch.Layout) {
	b.QueryLayout(in)
	b.QueryLayout(out)
}

func registerUserBackend() error {
	return algodispatch.RegisterEvaluator(algodispatch.Evaluator[complex64]{
		Key: algodispatch.Key{
			Dim:  1,
			Dir:  algodispatch.Forward,
			Conv: algodispatch.ByReference,
		},
		Name:       "user.fft1024",
		Provenance: algodispatch.ProvenanceUser,
		CTValid:    true,
		RTValid: func(dom algodispatch.Domain, _ complex64) bool {
			return dom.Size() == 1024
		},
		Exec: func(dom algodispatch.Domain, scale complex64) algodispatch.Backend[complex64] {
			return newUserFft1024(dom, scale)
		},
	})
}

func demoCmd() *cli.Command {
	var (
		configPath string
		verbosity  int
	)

	return &cli.Command{
		Name:  "demo",
		Usage: "Run the custom-evaluator dispatch walkthrough",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", Destination: &configPath},
			&cli.IntFlag{Name: "v", Usage: "log verbosity", Destination: &verbosity},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			level := int64(verbosity)
			if level == 0 {
				level = cfg.Verbosity
			}

			initLogging(level)

			if err := registerUserBackend(); err != nil {
				return err
			}

			scale := complex(float32(cfg.Scale), 0)

			for _, size := range cfg.Sizes {
				if err := runDemoSize(int(size), scale); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func runDemoSize(n int, scale complex64) error {
	fmt.Printf("Creating %d-element Fft handle\n", n)

	fft, err := algodispatch.NewFft(algodispatch.Forward, algodispatch.NewDomain(n), scale)
	if err != nil {
		return err
	}

	defer fft.Close()

	fmt.Printf("  selected evaluator: %s\n", fft.EvaluatorName())

	v := make([]complex64, n)
	w := make([]complex64, n)

	for i := range v {
		v[i] = 1
	}

	fmt.Printf("Using %d-element Fft handle (two arguments)\n", n)

	if err := fft.TransformTo(w, 1, v, 1); err != nil {
		return err
	}

	fmt.Printf("Using %d-element Fft handle (one argument)\n", n)

	if err := fft.Transform(v, 1); err != nil {
		return err
	}

	fmt.Printf("  w[0]=%v v[0]=%v\n", w[0], v[0])

	return nil
}

func registryCmd() *cli.Command {
	return &cli.Command{
		Name:  "registry",
		Usage: "Dump the evaluator registries in selection order as JSON",
		Action: func(_ context.Context, _ *cli.Command) error {
			return algodispatch.ExportRegistryTo(os.Stdout)
		},
	}
}
