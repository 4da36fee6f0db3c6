// Package naming derives channel-specific net names and component
// references.
package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GlobalNetMarker marks nets shared by all channels (buses, clocks, rails).
// The marker is stripped and the remainder is never channel-qualified.
const GlobalNetMarker = "G:"

// ErrUnknownStyle is a fatal configuration error
var ErrUnknownStyle = errors.New("naming: unknown channel naming style")

// Style selects how the channel id is attached to a name
type Style int

const (
	// StyleSuffix renames NET to NET_<channel>
	StyleSuffix Style = 1
	// StylePrefix renames NET to <channel>:NET
	StylePrefix Style = 2
)

func (s Style) String() string {
	switch s {
	case StyleSuffix:
		return "suffix"
	case StylePrefix:
		return "prefix"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle accepts "1"/"suffix" and "2"/"prefix".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "suffix":
		return StyleSuffix, nil
	case "2", "prefix":
		return StylePrefix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// Translator renames nets and references for one naming policy.
// Create it with NewTranslator; the style is validated there so translation
// itself cannot fail.
type Translator struct {
	style         Style
	incrementRefs bool
}

// NewTranslator validates the style and returns a translator. incrementRefs
// shifts numeric references by the per-channel increment instead of adding
// the channel id.
func NewTranslator(style Style, incrementRefs bool) (*Translator, error) {
	if style != StyleSuffix && style != StylePrefix {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(style))
	}
	return &Translator{style: style, incrementRefs: incrementRefs}, nil
}

// Style returns the configured style
func (t *Translator) Style() Style {
	return t.style
}

// Net returns the channel-specific name of a net. Global nets lose their
// marker and are otherwise left alone.
func (t *Translator) Net(name, channel string) string {
	if rest, ok := strings.CutPrefix(name, GlobalNetMarker); ok {
		return rest
	}
	return t.qualify(name, channel)
}

// Reference returns the channel-specific designator without the subpart.
// With reference increment enabled and a numeric part present, the number is
// shifted by increment; otherwise Base+Part is renamed like a net.
func (t *Translator) Reference(ref Reference, channel string, increment int) string {
	if t.incrementRefs && ref.Part != "" {
		if n, err := strconv.Atoi(ref.Part); err == nil {
			return ref.Base + strconv.Itoa(n+increment)
		}
	}
	return t.Net(ref.Base+ref.Part, channel)
}

// Title returns the channel-specific schematic sheet title.
func (t *Translator) Title(title, channel string) string {
	return t.qualify(title, channel)
}

func (t *Translator) qualify(name, channel string) string {
	if t.style == StylePrefix {
		return channel + ":" + name
	}
	return name + "_" + channel
}
