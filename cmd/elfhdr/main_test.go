package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleHeader returns a valid 64-byte header for a little-endian
// x86-64 executable with its entry point at 0x401000.
func sampleHeader() []byte {
	return []byte{
		0x7f, 'E', 'L', 'F', // magic
		0x02, // class: 64-bit
		0x01, // data: little-endian
		0x01, // version: current
		0x00, // OS/ABI: UNIX System V
		0x00, // ABI version
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // padding
		0x02, 0x00, // type: executable file
		0x3e, 0x00, // machine: AMD x86-64
		0x01, 0x00, 0x00, 0x00, // version: current
		0x00, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, // entry: 0x401000
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // phoff: 64
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // shoff: 0
		0x00, 0x00, 0x00, 0x00, // flags: 0
		0x40, 0x00, // ehsize: 64
		0x38, 0x00, // phentsize: 56
		0x01, 0x00, // phnum: 1
		0x40, 0x00, // shentsize: 64
		0x00, 0x00, // shnum: 0
		0x00, 0x00, // shstrndx: 0
	}
}

func writeTestFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.elf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func runCommand(args ...string) (string, error) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInspectCommand(t *testing.T) {
	path := writeTestFile(t, sampleHeader())

	output, err := runCommand(path)
	if err != nil {
		t.Fatalf("Command execution failed: %v", err)
	}

	expected := []string{
		"ELF Identification:",
		"  Magic: [7f 45 4c 46]",
		"  Class: 64-bit objects",
		"  Data: Little-endian",
		"  OS/ABI: No extensions or unspecified",
		"ELF Type: Executable file",
		"Machine: AMD x86-64 architecture",
		"Entry point address: 0x401000",
		"Start of program headers: 64 (bytes into file)",
		"Number of program headers: 1",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected text: %q\nFull output:\n%s", want, output)
		}
	}

	if strings.HasSuffix(output, "\n") {
		t.Errorf("Output should not end with a newline")
	}
}

func TestInspectCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{
			name: "bad magic",
			data: func() []byte {
				d := sampleHeader()
				d[0] = 0x7e
				return d
			}(),
			wantErr: "invalid ELF magic number",
		},
		{
			name: "bad class",
			data: func() []byte {
				d := sampleHeader()
				d[4] = 0x03
				return d
			}(),
			wantErr: "invalid ELF class",
		},
		{
			name: "unknown machine",
			data: func() []byte {
				d := sampleHeader()
				d[18] = 0x06
				return d
			}(),
			wantErr: "invalid ELF machine",
		},
		{
			name:    "truncated file",
			data:    sampleHeader()[:32],
			wantErr: "failed to read ELF header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, tt.data)

			output, err := runCommand(path)
			if err == nil {
				t.Fatalf("Expected error but command succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q doesn't contain %q", err.Error(), tt.wantErr)
			}
			if strings.Contains(output, "Usage:") {
				t.Errorf("Usage text should not be printed for decode failures:\n%s", output)
			}
		})
	}
}

func TestInspectCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := runCommand(path)
	if err == nil {
		t.Fatalf("Expected error but command succeeded")
	}
	if !strings.Contains(err.Error(), "failed to read ELF header") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: "accepts 1 arg(s), received 0",
		},
		{
			name:    "too many arguments",
			args:    []string{"one", "two"},
			wantErr: "accepts 1 arg(s), received 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCommand(tt.args...)
			if err == nil {
				t.Fatalf("Expected error but command succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q doesn't contain %q", err.Error(), tt.wantErr)
			}
			if !strings.Contains(output, "Usage:") {
				t.Errorf("Usage text should be printed for argument errors:\n%s", output)
			}
		})
	}
}

func TestInspectCommandConfigFlag(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configData := "log_level: debug\nlog_format: json\n"
	if err := os.WriteFile(configPath, []byte(configData), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	path := writeTestFile(t, sampleHeader())

	output, err := runCommand(path, "--config", configPath)
	if err != nil {
		t.Fatalf("Command execution failed: %v", err)
	}
	if !strings.Contains(output, "ELF Type:") {
		t.Errorf("Output missing header listing:\n%s", output)
	}
}

func TestInspectCommandConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		configData string
		missing    bool
		wantErr    string
	}{
		{
			name:    "missing config file",
			missing: true,
			wantErr: "failed to load configuration",
		},
		{
			name:       "invalid log level",
			configData: "log_level: loud\n",
			wantErr:    "invalid log_level",
		},
		{
			name:       "invalid log format",
			configData: "log_format: xml\n",
			wantErr:    "invalid log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if !tt.missing {
				if err := os.WriteFile(configPath, []byte(tt.configData), 0644); err != nil {
					t.Fatalf("Failed to write config file: %v", err)
				}
			}
			path := writeTestFile(t, sampleHeader())

			_, err := runCommand(path, "--config", configPath)
			if err == nil {
				t.Fatalf("Expected error but command succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q doesn't contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestInspectCommandVerboseFlag(t *testing.T) {
	path := writeTestFile(t, sampleHeader())

	output, err := runCommand(path, "--verbose")
	if err != nil {
		t.Fatalf("Command execution failed: %v", err)
	}
	if !strings.Contains(output, "ELF Type:") {
		t.Errorf("Output missing header listing:\n%s", output)
	}
}

func TestInspectCommandFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{"config", ""},
		{"verbose", "false"},
		{"log-format", ""},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("Flag --%s not registered", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("Flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := runCommand("version")
	if err != nil {
		t.Fatalf("Command execution failed: %v", err)
	}

	expected := []string{
		"elfhdr version dev",
		"Commit: unknown",
		"Built: unknown",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected text: %q\nFull output:\n%s", want, output)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := runCommand("--version")
	if err != nil {
		t.Fatalf("Command execution failed: %v", err)
	}
	if !strings.Contains(output, "elfhdr version dev (commit: unknown, built: unknown)") {
		t.Errorf("Unexpected version output:\n%s", output)
	}
}
