package app

import (
	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

// SampleLayout builds a small demo layout: two routing layers, a
// resonator cell instantiated twice and a handful of loose shapes.
func SampleLayout() *layout.Layout {
	l := layout.NewLayout()
	waveguide := l.AddLayer("waveguide")
	metal := l.AddLayer("metal")

	resonator := layout.NewCell("resonator")
	resonator.AddShape(waveguide, geometry.NewBox(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 8, Y: 2}))
	resonator.AddShape(waveguide, geometry.NewBox(geometry.Point{X: 3, Y: 2}, geometry.Point{X: 5, Y: 6}))

	top := l.AddTopCell("chip")
	top.AddInstance(resonator, geometry.Vector{DX: 4, DY: 4})
	top.AddInstance(resonator, geometry.Vector{DX: 24, DY: 4})

	top.AddShape(metal, geometry.NewBox(geometry.Point{X: 2, Y: 14}, geometry.Point{X: 14, Y: 18}))
	top.AddShape(metal, geometry.NewBox(geometry.Point{X: 20, Y: 14}, geometry.Point{X: 34, Y: 16}))
	top.AddShape(waveguide, geometry.NewBox(geometry.Point{X: 12, Y: 5}, geometry.Point{X: 24, Y: 6}))

	return l
}
