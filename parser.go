package ubershader

// Spec-language grammar, one statement per line:
//
//	line         := "" | comment | blendingStmt | shadingStmt | flagStmt
//	comment      := "#" any*
//	blendingStmt := "BlendingMode" ws? "=" ws? blendingValue
//	shadingStmt  := "ShadingModel" ws? "=" ws? shadingValue
//	flagStmt     := identifier ws? "=" ws? supportValue
//	identifier   := [A-Za-z0-9_]+
//	ws           := [ \t]+
//
// Values are the lowercase keyword sets accepted by ParseBlendingMode,
// ParseShadingModel, and ParseFeatureSupport. Anything after a complete
// statement, trailing whitespace included, is a syntax error. Blank and
// comment lines are skipped but still counted for error positions.

// Statement keywords. A statement whose identifier matches neither is a
// feature flag.
const (
	keywordBlending = "BlendingMode"
	keywordShading  = "ShadingModel"
)

// parseSpecLine parses one line into v, reporting errors at v.line.
func parseSpecLine(v *variant, line string) error {
	if line == "" || line[0] == '#' {
		return nil
	}

	p := &lineParser{variant: v.name, lineNum: v.line, src: line}

	name := p.word()
	if name == "" {
		return p.errorf("expected identifier")
	}
	p.ws()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return p.errorf("expected equal sign")
	}
	p.pos++
	p.ws()

	valueStart := p.pos
	value := p.word()

	// Each branch validates its value and the end of line before touching
	// the variant, so a rejected line leaves it unchanged.
	switch name {
	case keywordShading:
		m, ok := ParseShadingModel(value)
		if !ok {
			p.pos = valueStart
			return p.errorf("expected lowercase shading enum")
		}
		if err := p.trailing(); err != nil {
			return err
		}
		v.shading = m

	case keywordBlending:
		b, ok := ParseBlendingMode(value)
		if !ok {
			p.pos = valueStart
			return p.errorf("expected lowercase blending mode enum")
		}
		if err := p.trailing(); err != nil {
			return err
		}
		v.blending = b

	default:
		support, ok := ParseFeatureSupport(value)
		if !ok {
			p.pos = valueStart
			return p.errorf("expected unsupported / optional / required")
		}
		if err := p.trailing(); err != nil {
			return err
		}
		if _, dup := v.supports[name]; dup {
			Logger().Warn("duplicate feature flag", "variant", v.name, "flag", name, "line", p.lineNum)
		} else {
			v.flagOrder = append(v.flagOrder, name)
		}
		v.supports[name] = support
	}

	return nil
}

// lineParser is a byte cursor over a single spec line.
type lineParser struct {
	variant string
	lineNum int
	src     string
	pos     int
}

// errorf returns a SyntaxError positioned at the cursor. Columns are
// 1-based byte positions.
func (p *lineParser) errorf(msg string) *SyntaxError {
	return &SyntaxError{
		Variant: p.variant,
		Line:    p.lineNum,
		Column:  p.pos + 1,
		Message: msg,
	}
}

// trailing errors unless the cursor reached the end of the line.
func (p *lineParser) trailing() error {
	if p.pos < len(p.src) {
		return p.errorf("unexpected trailing character(s)")
	}
	return nil
}

// ws consumes spaces and tabs.
func (p *lineParser) ws() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// word consumes and returns the identifier at the cursor; it returns the
// empty string when the cursor is not at an identifier byte.
func (p *lineParser) word() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
