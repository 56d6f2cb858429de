package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

// withNotifications returns a config holding the user notification plus one
// notification per pattern.
func withNotifications(patterns ...string) *config.Config {
	cfg := config.New()

	for _, p := range patterns {
		n := cfg.AddNotification()
		n.AddTrigger(config.NewTrigger(p))
	}

	return cfg
}

func firstPatterns(cfg *config.Config) []string {
	out := make([]string, 0, len(cfg.Notifications))

	for _, n := range cfg.Notifications[1:] {
		out = append(out, n.Triggers[0].Pattern)
	}

	return out
}

var _ = Describe("Config", func() {
	Describe("New", func() {
		It("should start with the user notification only", func() {
			cfg := config.New()

			Expect(cfg.Notifications).To(HaveLen(1))
			Expect(cfg.UserNotification().IsUser()).To(BeTrue())
			Expect(cfg.UserNotification().Triggers).To(HaveLen(2))
		})

		It("should use the default options", func() {
			cfg := config.New()

			Expect(cfg.CheckOwnMessages).To(BeTrue())
			Expect(cfg.AllowRegex).To(BeFalse())
			Expect(cfg.SoundSource).To(Equal(config.SoundSourcePlayers))
			Expect(cfg.DefaultColor).To(Equal(config.DefaultColor))
			Expect(cfg.Prefixes).To(Equal([]string{"/shout", "!"}))
		})

		It("should not share the default prefixes slice", func() {
			cfg := config.New()
			cfg.Prefixes[0] = "changed"

			Expect(config.DefaultPrefixes[0]).To(Equal("/shout"))
		})
	})

	Describe("names", func() {
		It("should set profile and display names independently", func() {
			cfg := config.New()
			cfg.SetProfileName("Notch")
			cfg.SetDisplayName("[Admin] Notch")

			Expect(cfg.UserNotification().Triggers[0].Pattern).To(Equal("Notch"))
			Expect(cfg.UserNotification().Triggers[1].Pattern).To(Equal("[Admin] Notch"))
		})
	})

	Describe("AddNotification", func() {
		It("should seed the notification with the default color and sound", func() {
			cfg := config.New()
			cfg.DefaultColor = 0x00FF00
			cfg.DefaultSound.ID = "entity.experience_orb.pickup"

			n := cfg.AddNotification()

			Expect(cfg.Notifications).To(HaveLen(2))
			Expect(n.Enabled).To(BeTrue())
			Expect(n.TextStyle.Color.RGB).To(Equal(0x00FF00))
			Expect(n.Sound.ID).To(Equal("entity.experience_orb.pickup"))
		})

		It("should copy the default sound", func() {
			cfg := config.New()
			n := cfg.AddNotification()
			n.Sound.ID = "other"

			Expect(cfg.DefaultSound.ID).To(Equal(config.DefaultSoundID))
		})
	})

	Describe("RemoveNotification", func() {
		It("should never remove the user notification", func() {
			cfg := withNotifications("a", "b")

			Expect(cfg.RemoveNotification(0)).To(BeFalse())
			Expect(cfg.Notifications).To(HaveLen(3))
		})

		It("should remove other notifications", func() {
			cfg := withNotifications("a", "b")

			Expect(cfg.RemoveNotification(1)).To(BeTrue())
			Expect(firstPatterns(cfg)).To(Equal([]string{"b"}))
		})

		It("should ignore out of range indexes", func() {
			cfg := withNotifications("a")

			Expect(cfg.RemoveNotification(5)).To(BeFalse())
			Expect(cfg.RemoveNotification(-1)).To(BeFalse())
			Expect(cfg.Notifications).To(HaveLen(2))
		})
	})

	Describe("priority", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = withNotifications("a", "b", "c", "d")
		})

		It("should swap with the previous notification", func() {
			cfg.IncreasePriority(3)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "c", "b", "d"}))
		})

		It("should not swap into the user notification", func() {
			cfg.IncreasePriority(1)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
			Expect(cfg.Notifications[0].IsUser()).To(BeTrue())
		})

		It("should swap with the next notification", func() {
			cfg.DecreasePriority(2)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "c", "b", "d"}))
		})

		It("should not move the last notification down", func() {
			cfg.DecreasePriority(4)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
		})

		It("should not move the user notification down", func() {
			cfg.DecreasePriority(0)
			Expect(cfg.Notifications[0].IsUser()).To(BeTrue())
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
		})

		It("should restore the order when moving up then down", func() {
			cfg.IncreasePriority(3)
			cfg.DecreasePriority(2)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
		})

		It("should move to position 1 keeping the others in order", func() {
			cfg.ToMaxPriority(4)
			Expect(firstPatterns(cfg)).To(Equal([]string{"d", "a", "b", "c"}))
			Expect(cfg.Notifications[0].IsUser()).To(BeTrue())
		})

		It("should ignore max priority for indexes 0 and 1", func() {
			cfg.ToMaxPriority(1)
			cfg.ToMaxPriority(0)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
		})

		It("should move to the end keeping the others in order", func() {
			cfg.ToMinPriority(1)
			Expect(firstPatterns(cfg)).To(Equal([]string{"b", "c", "d", "a"}))
		})

		It("should ignore min priority for the last notification and the user notification", func() {
			cfg.ToMinPriority(4)
			cfg.ToMinPriority(0)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
			Expect(cfg.Notifications[0].IsUser()).To(BeTrue())
		})

		It("should ignore out of range indexes", func() {
			cfg.IncreasePriority(9)
			cfg.DecreasePriority(-3)
			cfg.ToMaxPriority(9)
			cfg.ToMinPriority(-1)
			Expect(firstPatterns(cfg)).To(Equal([]string{"a", "b", "c", "d"}))
		})
	})

	Describe("prefixes", func() {
		It("should store prefixes trimmed and lower-cased", func() {
			cfg := config.New()

			Expect(cfg.AddPrefix("  /MSG ")).To(BeTrue())
			Expect(cfg.Prefixes).To(ContainElement("/msg"))
		})

		It("should reject blank and duplicate prefixes", func() {
			cfg := config.New()

			Expect(cfg.AddPrefix("   ")).To(BeFalse())
			Expect(cfg.AddPrefix("!")).To(BeFalse())
			Expect(cfg.Prefixes).To(HaveLen(2))
		})

		It("should remove a prefix by index", func() {
			cfg := config.New()

			Expect(cfg.RemovePrefix(0)).To(BeTrue())
			Expect(cfg.Prefixes).To(Equal([]string{"!"}))
			Expect(cfg.RemovePrefix(3)).To(BeFalse())
		})
	})

	Describe("Validate", func() {
		It("should sort prefixes by descending length and drop blanks", func() {
			cfg := config.New()
			cfg.Prefixes = []string{"!", "", "/shout", "  ", "/w", "/msg"}

			cfg.Validate()

			Expect(cfg.Prefixes).To(Equal([]string{"/shout", "/msg", "/w", "!"}))

			for i := 1; i < len(cfg.Prefixes); i++ {
				Expect(len(cfg.Prefixes[i-1])).To(BeNumerically(">=", len(cfg.Prefixes[i])))
			}
		})

		It("should keep two triggers on the user notification", func() {
			cfg := config.New()
			cfg.UserNotification().AddTrigger(config.NewTrigger(""))
			cfg.UserNotification().AddTrigger(config.NewTrigger("nick"))

			cfg.Validate()

			triggers := cfg.UserNotification().Triggers
			Expect(triggers).To(HaveLen(3))
			Expect(triggers[2].Pattern).To(Equal("nick"))
		})

		It("should repair a user notification that lost its name triggers", func() {
			cfg := config.New()
			cfg.Notifications[0].Triggers = nil

			cfg.Validate()

			Expect(cfg.UserNotification().Triggers).To(HaveLen(2))
		})

		It("should recreate a missing user notification", func() {
			cfg := config.New()
			cfg.Notifications = nil

			cfg.Validate()

			Expect(cfg.Notifications).To(HaveLen(1))
			Expect(cfg.UserNotification().Triggers).To(HaveLen(2))
		})

		It("should remove notifications left empty", func() {
			cfg := withNotifications("a")
			blank := cfg.AddNotification()
			blank.AddTrigger(config.NewTrigger("   "))
			blank.AddResponseMessage(config.NewResponseMessage(""))

			cfg.Validate()

			Expect(cfg.Notifications).To(HaveLen(2))
			Expect(firstPatterns(cfg)).To(Equal([]string{"a"}))
		})

		It("should disable notifications without triggers that keep other content", func() {
			cfg := config.New()
			n := cfg.AddNotification()
			n.AddTrigger(config.NewTrigger(""))
			n.AddExclusionTrigger(config.NewExclusionTrigger("spam"))

			cfg.Validate()

			Expect(cfg.Notifications).To(HaveLen(2))
			Expect(cfg.Notifications[1].Enabled).To(BeFalse())
			Expect(cfg.Notifications[1].Triggers).To(BeEmpty())
		})

		It("should leave notifications with triggers enabled", func() {
			cfg := withNotifications("a")

			cfg.Validate()

			Expect(cfg.Notifications[1].Enabled).To(BeTrue())
		})

		It("should never leave the list empty", func() {
			cfg := config.New()

			for range 3 {
				cfg.Validate()
			}

			Expect(cfg.Notifications).NotTo(BeEmpty())
			Expect(cfg.UserNotification().Triggers).To(HaveLen(2))
		})
	})

	Describe("Clone", func() {
		It("should not share notifications with the original", func() {
			cfg := withNotifications("a")
			clone := cfg.Clone()
			clone.Notifications[1].Triggers[0].Pattern = "changed"
			clone.Prefixes[0] = "changed"

			Expect(cfg.Notifications[1].Triggers[0].Pattern).To(Equal("a"))
			Expect(cfg.Prefixes[0]).To(Equal("/shout"))
			Expect(clone.Notifications[0].IsUser()).To(BeTrue())
		})
	})
})
