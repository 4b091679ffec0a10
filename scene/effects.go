package scene

// Effect names one post-process toggle.
type Effect int

const (
	EffectGreyscale Effect = iota
	EffectFlipHorizontal
	EffectFlipVertical
	EffectBlur
)

func (e Effect) String() string {
	switch e {
	case EffectGreyscale:
		return "greyscale"
	case EffectFlipHorizontal:
		return "flip-horizontal"
	case EffectFlipVertical:
		return "flip-vertical"
	case EffectBlur:
		return "blur"
	}
	return "unknown"
}

// PostEffects are the screen-quad toggles. All start off.
type PostEffects struct {
	Greyscale      bool
	FlipHorizontal bool
	FlipVertical   bool
	Blur           bool
}

// Toggle flips one effect and returns its new value.
func (p *PostEffects) Toggle(e Effect) bool {
	switch e {
	case EffectGreyscale:
		p.Greyscale = !p.Greyscale
		return p.Greyscale
	case EffectFlipHorizontal:
		p.FlipHorizontal = !p.FlipHorizontal
		return p.FlipHorizontal
	case EffectFlipVertical:
		p.FlipVertical = !p.FlipVertical
		return p.FlipVertical
	case EffectBlur:
		p.Blur = !p.Blur
		return p.Blur
	}
	return false
}
