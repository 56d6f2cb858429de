package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

var _ = Describe("Evaluate", func() {
	var (
		m     *engine.Matcher
		n     *config.Notification
		scope engine.Scope
	)

	BeforeEach(func() {
		m = engine.NewMatcher()
		n = config.NewNotification(config.DefaultSound(), config.TextStyle{Version: 1})
		n.AddTrigger(config.NewTrigger("world"))
		scope = engine.Scope{AllowRegex: true, DefaultColor: 0x00FF00}
	})

	It("should return the winning trigger", func() {
		res := m.Evaluate(n, text("hello world"), scope)

		Expect(res).NotTo(BeNil())
		Expect(res.Trigger).To(BeIdenticalTo(n.Triggers[0]))
		Expect(res.TriggerIndex).To(Equal(0))
		Expect(res.Groups).To(BeEmpty())
	})

	It("should let an exclusion trigger short-circuit", func() {
		n.AddExclusionTrigger(config.NewExclusionTrigger("hello"))

		Expect(m.Evaluate(n, text("hello world"), scope)).To(BeNil())
	})

	It("should not fire when disabled", func() {
		n.Enabled = false

		Expect(m.Evaluate(n, text("hello world"), scope)).To(BeNil())
	})

	It("should pick the first matching trigger", func() {
		n.Triggers = nil
		n.AddTrigger(config.NewTrigger("nope"))
		n.AddTrigger(regexTrigger(`(\d+) diamonds`))
		n.AddTrigger(config.NewTrigger("diamonds"))

		res := m.Evaluate(n, text("found 12 diamonds"), scope)

		Expect(res.TriggerIndex).To(Equal(1))
		Expect(res.Groups).To(Equal([]string{"12 diamonds", "12"}))
	})

	It("should skip an invalid regex trigger and try the next one", func() {
		n.Triggers = nil
		n.AddTrigger(regexTrigger("[invalid("))
		n.AddTrigger(config.NewTrigger("world"))

		res := m.Evaluate(n, text("hello world"), scope)

		Expect(res).NotTo(BeNil())
		Expect(res.TriggerIndex).To(Equal(1))
	})

	It("should resolve the style against the default color", func() {
		res := m.Evaluate(n, text("hello world"), scope)

		Expect(res.Style.Color).To(Equal(config.Color{RGB: 0x00FF00, Valid: true}))
		Expect(res.Style.Bold).To(BeFalse())
	})

	It("should only carry enabled responses", func() {
		on := config.NewResponseMessage("hi")
		off := config.NewResponseMessage("bye")
		off.Enabled = false
		n.AddResponseMessage(on)
		n.AddResponseMessage(off)

		res := m.Evaluate(n, text("hello world"), scope)

		Expect(res.Responses).To(ConsistOf(on))
		Expect(res.Sound).To(Equal(config.DefaultSound()))
	})
})

var _ = Describe("Engine", func() {
	var (
		e   *engine.Engine
		cfg *config.Config
	)

	BeforeEach(func() {
		e = engine.New()
		cfg = config.New()
		cfg.SetProfileName("Notch")
		cfg.Validate()
	})

	add := func(pattern string) *config.Notification {
		n := cfg.AddNotification()
		n.AddTrigger(config.NewTrigger(pattern))

		return n
	}

	It("should match the user name first", func() {
		add("notch")

		res := e.Process(cfg, text("hi Notch"))

		Expect(res).NotTo(BeNil())
		Expect(res.NotificationIndex).To(Equal(0))
	})

	It("should return the first notification that fires", func() {
		add("world")
		add("hello")

		res := e.Process(cfg, text("hello world"))

		Expect(res.NotificationIndex).To(Equal(1))
		Expect(res.Notification.Triggers[0].Pattern).To(Equal("world"))
	})

	It("should fall through a suppressed notification", func() {
		add("world").AddExclusionTrigger(config.NewExclusionTrigger("hello"))
		add("hello")

		res := e.Process(cfg, text("hello world"))

		Expect(res.NotificationIndex).To(Equal(2))
	})

	It("should return nil when nothing fires", func() {
		add("world")

		Expect(e.Process(cfg, text("goodbye"))).To(BeNil())
	})

	It("should strip a prefix before matching", func() {
		add("hi")

		cfg.Prefixes = []string{"/shout", "!"}
		res := e.Process(cfg, text("!hi"))

		Expect(res).NotTo(BeNil())
		Expect(res.Text).To(Equal("hi"))
	})

	It("should match against the text without its prefix", func() {
		n := add("^hi$")
		n.Triggers[0].IsRegex = true
		cfg.AllowRegex = true

		Expect(e.Process(cfg, text("!hi"))).NotTo(BeNil())
		Expect(e.Process(cfg, text("?hi"))).To(BeNil())
	})

	It("should skip own messages unless they are checked", func() {
		add("hello")
		own := engine.Message{Text: "hello", Own: true}

		Expect(e.Process(cfg, own)).NotTo(BeNil())

		cfg.CheckOwnMessages = false
		Expect(e.Process(cfg, own)).To(BeNil())
		Expect(e.Process(cfg, text("hello"))).NotTo(BeNil())
	})

	It("should gate regex triggers on the config", func() {
		n := add("w.rld")
		n.Triggers[0].IsRegex = true

		Expect(e.Process(cfg, text("hello world"))).To(BeNil())

		cfg.AllowRegex = true
		Expect(e.Process(cfg, text("hello world"))).NotTo(BeNil())
	})

	It("should keep an invalid regex trigger enabled by default", func() {
		n := add("[invalid(")
		n.Triggers[0].IsRegex = true
		cfg.AllowRegex = true

		Expect(e.Process(cfg, text("[invalid("))).To(BeNil())
		Expect(n.Triggers[0].Enabled).To(BeTrue())
	})

	It("should disable an invalid regex trigger when configured to", func() {
		e = engine.New(engine.WithDisableInvalidRegex())
		n := add("[invalid(")
		n.Triggers[0].IsRegex = true
		cfg.AllowRegex = true

		Expect(e.Process(cfg, text("[invalid("))).To(BeNil())
		Expect(n.Triggers[0].Enabled).To(BeFalse())
	})

	It("should use the configured default color", func() {
		n := add("hello")
		n.TextStyle = config.TextStyle{Version: 1}
		cfg.DefaultColor = 0x123456

		res := e.Process(cfg, text("hello"))

		Expect(res.Style.Color.RGB).To(Equal(0x123456))
	})

	It("should tolerate a nil config", func() {
		Expect(e.Process(nil, text("hello"))).To(BeNil())
	})
})
