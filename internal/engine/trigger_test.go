package engine_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

func regexTrigger(pattern string) *config.Trigger {
	t := config.NewTrigger(pattern)
	t.IsRegex = true

	return t
}

func text(s string) engine.Message {
	return engine.Message{Text: s}
}

var _ = Describe("Matcher", func() {
	var m *engine.Matcher

	BeforeEach(func() {
		m = engine.NewMatcher()
	})

	Describe("MatchTrigger", func() {
		It("should match a substring case-insensitively", func() {
			_, ok := m.MatchTrigger(config.NewTrigger("WORLD"), text("hello world"), false)
			Expect(ok).To(BeTrue())
		})

		It("should respect case sensitivity", func() {
			t := config.NewTrigger("WORLD")
			t.CaseSensitive = true

			_, ok := m.MatchTrigger(t, text("hello world"), false)
			Expect(ok).To(BeFalse())
		})

		It("should never match when disabled", func() {
			t := config.NewTrigger("world")
			t.Enabled = false

			_, ok := m.MatchTrigger(t, text("hello world"), false)
			Expect(ok).To(BeFalse())
		})

		It("should never match a blank pattern", func() {
			_, ok := m.MatchTrigger(config.NewTrigger("  "), text("hello   world"), false)
			Expect(ok).To(BeFalse())
		})

		It("should ignore regex triggers when regex is not allowed", func() {
			_, ok := m.MatchTrigger(regexTrigger("w.rld"), text("hello world"), false)
			Expect(ok).To(BeFalse())
		})

		It("should match a regex anywhere and keep the groups", func() {
			match, ok := m.MatchTrigger(regexTrigger(`(\w+) joined the (\w+)`), text("Notch joined the game!"), true)

			Expect(ok).To(BeTrue())
			Expect(match.Groups).To(Equal([]string{"Notch joined the game", "Notch", "game"}))
		})

		It("should match a regex case-insensitively unless told otherwise", func() {
			_, ok := m.MatchTrigger(regexTrigger("^HELLO"), text("hello world"), true)
			Expect(ok).To(BeTrue())

			t := regexTrigger("^HELLO")
			t.CaseSensitive = true

			_, ok = m.MatchTrigger(t, text("hello world"), true)
			Expect(ok).To(BeFalse())
		})

		It("should treat a literal pattern with regex characters literally", func() {
			_, ok := m.MatchTrigger(config.NewTrigger("[Admin]"), text("[admin] Notch: hi"), true)
			Expect(ok).To(BeTrue())
		})

		Describe("key triggers", func() {
			It("should match any message with the any key", func() {
				_, ok := m.MatchTrigger(config.NewKeyTrigger(config.AnyMessageKey), text("anything"), false)
				Expect(ok).To(BeTrue())
			})

			It("should match when the message carries the key", func() {
				msg := engine.Message{Text: "Notch has made the advancement", Keys: []string{"chat.type.advancement.task"}}

				_, ok := m.MatchTrigger(config.NewKeyTrigger("chat.type.advancement.task"), msg, false)
				Expect(ok).To(BeTrue())
			})

			It("should not match the key against the text", func() {
				_, ok := m.MatchTrigger(config.NewKeyTrigger("advancement"), text("advancement"), false)
				Expect(ok).To(BeFalse())
			})

			It("should ignore the regex flag", func() {
				t := config.NewKeyTrigger("chat.type.*")
				t.IsRegex = true

				_, ok := m.MatchTrigger(t, engine.Message{Keys: []string{"chat.type.text"}}, true)
				Expect(ok).To(BeFalse())
			})
		})

		Describe("invalid regex", func() {
			var buf bytes.Buffer

			BeforeEach(func() {
				buf.Reset()
				m = engine.NewMatcher(engine.WithMatcherLogger(logger.New(&buf, logger.LevelDebug)))
			})

			It("should not match and log the pattern once", func() {
				t := regexTrigger("[invalid(")

				for range 3 {
					_, ok := m.MatchTrigger(t, text("[invalid("), true)
					Expect(ok).To(BeFalse())
				}

				Expect(strings.Count(buf.String(), "invalid regex, trigger ignored")).To(Equal(1))
				Expect(t.Enabled).To(BeTrue())
			})

			It("should switch the trigger off when configured to", func() {
				m = engine.NewMatcher(engine.WithDisableInvalid(true))
				t := regexTrigger("[invalid(")

				_, ok := m.MatchTrigger(t, text("x"), true)

				Expect(ok).To(BeFalse())
				Expect(t.Enabled).To(BeFalse())
			})
		})
	})

	Describe("MatchExclusion", func() {
		It("should match a literal substring", func() {
			Expect(m.MatchExclusion(config.NewExclusionTrigger("HELLO"), text("hello world"), false)).To(BeTrue())
		})

		It("should never match when disabled", func() {
			ex := config.NewExclusionTrigger("hello")
			ex.Enabled = false

			Expect(m.MatchExclusion(ex, text("hello world"), false)).To(BeFalse())
		})

		It("should match a regex when allowed", func() {
			ex := config.NewExclusionTrigger(`^\[bot\]`)
			ex.IsRegex = true

			Expect(m.MatchExclusion(ex, text("[BOT] hello"), true)).To(BeTrue())
			Expect(m.MatchExclusion(ex, text("[BOT] hello"), false)).To(BeFalse())
		})
	})
})
