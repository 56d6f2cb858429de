package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/internal/config"
	model "github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

var _ = Describe("EscapeNonASCII", func() {
	It("should leave ASCII untouched", func() {
		Expect(string(config.EscapeNonASCII([]byte(`{"a": "b"}`)))).To(Equal(`{"a": "b"}`))
	})

	It("should escape characters of the basic plane", func() {
		Expect(string(config.EscapeNonASCII([]byte("\"Jos\u00e9\"")))).To(Equal(`"Jos\u00e9"`))
	})

	It("should escape other characters as surrogate pairs", func() {
		Expect(string(config.EscapeNonASCII([]byte("\"\U0001F389\"")))).To(Equal(`"\ud83c\udf89"`))
	})

	It("should replace invalid bytes", func() {
		Expect(string(config.EscapeNonASCII([]byte{'"', 0xff, '"'}))).To(Equal(`"\ufffd"`))
	})
})

var _ = Describe("Marshal", func() {
	It("should write names outside ASCII as escapes that read back unchanged", func() {
		cfg := model.New()
		cfg.SetProfileName("Jos\u00e9 \U0001F389")

		data, err := config.Marshal(cfg)
		Expect(err).NotTo(HaveOccurred())

		for _, b := range data {
			Expect(b).To(BeNumerically("<", 0x80))
		}

		Expect(string(data)).To(ContainSubstring(`Jos\u00e9 \ud83c\udf89`))

		parsed, err := config.ParseCurrent(data, logger.NewNoOpLogger())
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.UserNotification().Triggers[0].Pattern).To(Equal("Jos\u00e9 \U0001F389"))
	})

	It("should not escape HTML characters", func() {
		cfg := model.New()
		cfg.SetDisplayName("<Notch> & co")

		data, err := config.Marshal(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"<Notch> & co"`))
	})

	It("should reject a nil config", func() {
		_, err := config.Marshal(nil)
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})
})

var _ = Describe("Writer", func() {
	var (
		dir    string
		path   string
		writer *config.Writer
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "config", "chatnotify.json")
		writer = config.NewWriter()
	})

	It("should create the directory and the file", func() {
		Expect(writer.Write(path, model.New())).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(config.FileMode)))
	})

	It("should leave no temporary file behind", func() {
		Expect(writer.Write(path, model.New())).To(Succeed())
		Expect(writer.Write(path, model.New())).To(Succeed())

		entries, err := os.ReadDir(filepath.Dir(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("chatnotify.json"))
	})

	It("should replace the previous content", func() {
		cfg := model.New()
		Expect(writer.Write(path, cfg)).To(Succeed())

		cfg.SetProfileName("Notch")
		Expect(writer.Write(path, cfg)).To(Succeed())

		loaded, gen := config.Load(path, nil)
		Expect(gen).To(Equal(config.GenerationCurrent))
		Expect(loaded.UserNotification().Triggers[0].Pattern).To(Equal("Notch"))
	})

	It("should keep the previous file when the target cannot be replaced", func() {
		Expect(os.MkdirAll(path, 0o700)).To(Succeed())

		Expect(writer.Write(path, model.New())).NotTo(Succeed())

		_, err := os.Stat(path + ".tmp")
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
