package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/internal/config"
	model "github.com/smykla-skalski/chatnotify/pkg/config"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(string, *model.Config) error {
	w.calls++

	return errDiskFull
}

var _ = Describe("Store", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "chatnotify.json")
	})

	It("should load defaults lazily when the file is missing", func() {
		store := config.NewStore(path, nil, nil)

		Expect(store.Path()).To(Equal(path))
		Expect(store.Generation()).To(Equal(config.GenerationNone))
		Expect(store.Get().Notifications).To(HaveLen(1))

		_, err := os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should return the same config on every call", func() {
		store := config.NewStore(path, nil, nil)

		Expect(store.Get()).To(BeIdenticalTo(store.Init()))
	})

	It("should save and reload changes", func() {
		store := config.NewStore(path, nil, nil)
		store.Get().SetProfileName("Notch")
		store.Get().AddNotification().AddTrigger(model.NewTrigger("diamonds"))

		Expect(store.Save()).To(Succeed())
		Expect(store.Generation()).To(Equal(config.GenerationCurrent))

		reloaded := config.NewStore(path, nil, nil).Get()
		Expect(reloaded.UserNotification().Triggers[0].Pattern).To(Equal("Notch"))
		Expect(reloaded.Notifications).To(HaveLen(2))
	})

	It("should validate before saving", func() {
		store := config.NewStore(path, nil, nil)
		store.Get().Prefixes = []string{"!", " /MSG "}

		Expect(store.Save()).To(Succeed())
		Expect(store.Get().Prefixes).To(Equal([]string{"/msg", "!"}))
	})

	It("should keep the in-memory config when the write fails", func() {
		writer := &failingWriter{}
		store := config.NewStore(path, writer, nil)
		store.Get().SetProfileName("Notch")

		err := store.Save()
		Expect(errors.Is(err, errDiskFull)).To(BeTrue())
		Expect(store.Get().UserNotification().Triggers[0].Pattern).To(Equal("Notch"))
		Expect(store.Generation()).To(Equal(config.GenerationNone))

		_, err = store.GetAndSave()
		Expect(err).To(HaveOccurred())
		Expect(writer.calls).To(Equal(2))
	})

	It("should rewrite an older generation in the current layout", func() {
		Expect(os.WriteFile(path, readFixture("legacy.json"), 0o600)).To(Succeed())

		store := config.NewStore(path, nil, nil)
		Expect(store.Generation()).To(Equal(config.GenerationLegacy))

		cfg, err := store.GetAndSave()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Notifications).To(HaveLen(2))

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		_, gen, err := config.Decode(data, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(gen).To(Equal(config.GenerationCurrent))
	})

	It("should reset to defaults and save them", func() {
		store := config.NewStore(path, nil, nil)
		store.Get().AddNotification().AddTrigger(model.NewTrigger("diamonds"))
		Expect(store.Save()).To(Succeed())

		cfg, err := store.Reset()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Notifications).To(HaveLen(1))

		Expect(config.NewStore(path, nil, nil).Get().Notifications).To(HaveLen(1))
	})
})
