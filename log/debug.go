package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug output is off unless BPI_DEBUG=1. It goes to its own file, truncated
// at startup, so one run of resizes can be read top to bottom.
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

// DebugFileName returns where debug output is written. BPI_DEBUG_FILE
// overrides the default in the temp directory.
func DebugFileName() string {
	if name := os.Getenv("BPI_DEBUG_FILE"); name != "" {
		return name
	}
	return filepath.Join(os.TempDir(), "breakpoint-indicator-debug.log")
}

// InitDebug reads BPI_DEBUG and opens the debug log when it is "1".
func InitDebug() {
	DebugEnabled = false
	DebugLog = log.New(io.Discard, "", 0)
	if os.Getenv("BPI_DEBUG") != "1" {
		return
	}

	name := DebugFileName()
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("debug logging disabled, cannot open %s: %v", name, err)
		return
	}

	debugLogFile = f
	DebugLog = log.New(f, "DEBUG:", log.Ltime|log.Lmicroseconds)
	DebugEnabled = true
	DebugLog.Printf("debug log %s (pid %d)", name, os.Getpid())
}

// CloseDebug writes the render profile and closes the debug log.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	DebugEnabled = false
	DebugLog = log.New(io.Discard, "", 0)
}

func trace(tag, format string, v []interface{}) {
	if !DebugEnabled || DebugLog == nil {
		return
	}
	if tag == "" {
		DebugLog.Printf(format, v...)
		return
	}
	DebugLog.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

// Debug logs an untagged debug message.
func Debug(format string, v ...interface{}) { trace("", format, v) }

// EvalTrace logs which breakpoint a width resolved to.
func EvalTrace(format string, v ...interface{}) { trace("EVAL", format, v) }

// SourceTrace logs threshold lookups, including values that were dropped.
func SourceTrace(format string, v ...interface{}) { trace("SOURCE", format, v) }

// RenderTrace logs what a component rendered.
func RenderTrace(component, format string, v ...interface{}) {
	trace("RENDER:"+component, format, v)
}

// RenderProfiler times View calls per component while debug mode is on.
type RenderProfiler struct {
	mu         sync.Mutex
	components map[string]*ComponentMetrics
}

// ComponentMetrics are the accumulated render timings of one component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

// Avg returns the mean render time.
func (m ComponentMetrics) Avg() time.Duration {
	if m.RenderCount == 0 {
		return 0
	}
	return m.TotalTime / time.Duration(m.RenderCount)
}

var profiler = &RenderProfiler{components: map[string]*ComponentMetrics{}}

// GetProfiler returns the process-wide profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender starts timing component and returns the function that stops
// it. Nothing is recorded while debug mode is off.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() { p.record(component, time.Since(start)) }
}

func (p *RenderProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m := p.components[component]
	if m == nil {
		m = &ComponentMetrics{Name: component}
		p.components[component] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	m.MaxTime = max(m.MaxTime, elapsed)
}

// Metrics returns a copy of the timings, sorted by component name.
func (p *RenderProfiler) Metrics() []ComponentMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetStats formats Metrics for the debug log. It is empty while debug mode
// is off.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== Render Profile ===\n")
	for _, m := range p.Metrics() {
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.Avg(), m.MaxTime)
	}
	return sb.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all timings.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.components = map[string]*ComponentMetrics{}
}
