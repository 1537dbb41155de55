package boxel

// Measurement is the result of measuring a run of text at a given font and
// size: its pixel width and height, and the advance offsets the engine
// applies when positioning the glyph run. yOffset is the baseline-to-top
// offset.
type Measurement struct {
	Width, Height float64
	XOffset       float64
	YOffset       float64
}

// MeasureFunc is the host-supplied text measurement callback. It must be
// pure with respect to its arguments; MeasurementCache depends on that to
// memoize safely.
type MeasureFunc func(text string, fontID uint32, fontSize uint16) Measurement

// measureKey is a comparable struct used directly as a map key — text nodes
// are short-to-medium strings, so the stdlib map's built-in hashing is
// cheaper than anything hand-rolled here.
type measureKey struct {
	fontID   uint32
	fontSize uint16
	text     string
}

// MeasurementCache is a memoization layer over a MeasureFunc, keyed by
// (fontId, fontSize, text). Each Context creates its own at NewContext and
// keeps it across frames (Begin does not clear it); there is no way to
// install a different cache on a Context.
type MeasurementCache struct {
	entries map[measureKey]Measurement
}

// NewMeasurementCache returns an empty cache.
func NewMeasurementCache() *MeasurementCache {
	return &MeasurementCache{entries: make(map[measureKey]Measurement)}
}

// Get returns the cached measurement for (text, fontID, fontSize), invoking
// fn and storing the result on a miss.
func (c *MeasurementCache) Get(fn MeasureFunc, text string, fontID uint32, fontSize uint16) Measurement {
	key := measureKey{fontID: fontID, fontSize: fontSize, text: text}
	if m, ok := c.entries[key]; ok {
		return m
	}
	m := fn(text, fontID, fontSize)
	c.entries[key] = m
	return m
}

// Len returns the number of distinct measurements currently cached.
func (c *MeasurementCache) Len() int {
	return len(c.entries)
}
