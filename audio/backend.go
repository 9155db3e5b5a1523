package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/ironrift/parameter"
)

var rate = strconv.Itoa(parameter.AudioSampleRate)

// pipeBackends lists exec backends reading raw s16le stereo on stdin, in preference order
var pipeBackends = []BackendConfig{
	{Type: BackendPulse, Name: "pacat", Args: []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}},
	{Type: BackendPipeWire, Name: "pw-cat", Args: []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}},
	{Type: BackendALSA, Name: "aplay", Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}},
	{Type: BackendSoX, Name: "play", Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}},
	{Type: BackendFFplay, Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate, "-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"}},
}

// Detector locates a playback backend; lookups are injectable for tests
type Detector struct {
	LookPath func(string) (string, error)
	Stat     func(string) (os.FileInfo, error)
	GOOS     string
}

// DetectBackend searches the host for an available backend
func DetectBackend() (*BackendConfig, error) {
	return Detector{LookPath: exec.LookPath, Stat: os.Stat, GOOS: runtime.GOOS}.Detect()
}

// Detect returns the first available backend: exec pipes first, then FreeBSD OSS
func (d Detector) Detect() (*BackendConfig, error) {
	for _, b := range pipeBackends {
		path, err := d.LookPath(b.Name)
		if err != nil {
			continue
		}
		found := b
		found.Path = path
		found.Args = append([]string(nil), b.Args...)
		return &found, nil
	}

	if d.GOOS == "freebsd" {
		if _, err := d.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
