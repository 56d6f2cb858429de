package config_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

var _ = Describe("Notification", func() {
	var n *config.Notification

	BeforeEach(func() {
		n = config.NewNotification(config.DefaultSound(), config.NewTextStyle(config.DefaultColor))
	})

	Describe("RemoveTrigger", func() {
		It("should not remove the reserved user triggers", func() {
			user := config.NewUserNotification()
			user.AddTrigger(config.NewTrigger("extra"))

			Expect(user.RemoveTrigger(0)).To(BeFalse())
			Expect(user.RemoveTrigger(1)).To(BeFalse())
			Expect(user.RemoveTrigger(2)).To(BeTrue())
			Expect(user.Triggers).To(HaveLen(2))
		})

		It("should remove any trigger of an ordinary notification", func() {
			n.AddTrigger(config.NewTrigger("a"))
			n.AddTrigger(config.NewTrigger("b"))

			Expect(n.RemoveTrigger(0)).To(BeTrue())
			Expect(n.Triggers).To(HaveLen(1))
			Expect(n.Triggers[0].Pattern).To(Equal("b"))
		})

		It("should ignore out of range indexes", func() {
			Expect(n.RemoveTrigger(0)).To(BeFalse())
			Expect(n.RemoveExclusionTrigger(0)).To(BeFalse())
			Expect(n.RemoveResponseMessage(-1)).To(BeFalse())
		})
	})

	Describe("SetEnabled", func() {
		It("should refuse to enable a notification without triggers", func() {
			n.Enabled = false

			Expect(n.SetEnabled(true)).To(BeFalse())
			Expect(n.Enabled).To(BeFalse())
		})

		It("should always allow disabling", func() {
			Expect(n.SetEnabled(false)).To(BeTrue())
			Expect(n.Enabled).To(BeFalse())
		})
	})

	Describe("Purge", func() {
		It("should drop blank entries", func() {
			n.AddTrigger(config.NewTrigger(" "))
			n.AddTrigger(config.NewTrigger("keep"))
			n.AddExclusionTrigger(config.NewExclusionTrigger(""))
			n.AddResponseMessage(config.NewResponseMessage("\t"))

			n.Purge()

			Expect(n.Triggers).To(HaveLen(1))
			Expect(n.ExclusionTriggers).To(BeEmpty())
			Expect(n.ResponseMessages).To(BeEmpty())
		})

		It("should clamp negative delays", func() {
			r := config.NewResponseMessage("hi")
			r.DelayTicks = -4
			n.AddResponseMessage(r)

			n.Purge()

			Expect(n.ResponseMessages[0].DelayTicks).To(Equal(0))
		})

		It("should keep blank reserved triggers of the user notification", func() {
			user := config.NewUserNotification()
			user.AddTrigger(config.NewTrigger(""))

			user.Purge()

			Expect(user.Triggers).To(HaveLen(2))
		})

		It("should not change the enabled flag", func() {
			n.AddTrigger(config.NewTrigger(""))

			n.Purge()

			Expect(n.Enabled).To(BeTrue())
		})
	})

	Describe("AutoDisable", func() {
		It("should disable a notification without triggers", func() {
			n.AutoDisable()
			Expect(n.Enabled).To(BeFalse())
		})

		It("should keep a notification with triggers enabled", func() {
			n.AddTrigger(config.NewTrigger("a"))
			n.AutoDisable()
			Expect(n.Enabled).To(BeTrue())
		})
	})

	Describe("ResetAdvanced", func() {
		It("should clear exclusions and responses and turn regex off", func() {
			t := config.NewTrigger("a+")
			t.IsRegex = true
			n.AddTrigger(t)
			n.AddExclusionTrigger(config.NewExclusionTrigger("x"))
			n.AddResponseMessage(config.NewResponseMessage("y"))

			n.ResetAdvanced()

			Expect(n.ExclusionTriggers).To(BeEmpty())
			Expect(n.ResponseMessages).To(BeEmpty())
			Expect(n.Triggers[0].IsRegex).To(BeFalse())
		})
	})

	Describe("Label", func() {
		It("should ask for configuration when there are no triggers", func() {
			Expect(n.Label()).To(Equal("> Click to Configure <"))
		})

		It("should join up to three triggers", func() {
			n.AddTrigger(config.NewTrigger("a"))
			n.AddTrigger(config.NewTrigger("b"))

			Expect(n.Label()).To(Equal("a, b"))
		})

		It("should count the triggers not shown", func() {
			for _, p := range []string{"a", "b", "c", "d", "e"} {
				n.AddTrigger(config.NewTrigger(p))
			}

			Expect(n.Label()).To(Equal("a, b, c [+2]"))
		})

		DescribeTable("should mark key triggers",
			func(pattern, want string) {
				n.AddTrigger(config.NewKeyTrigger(pattern))
				n.AddTrigger(config.NewTrigger("gg"))

				Expect(n.Label()).To(Equal(want))
			},
			Entry("named key", "chat.type.advancement.task", "[Key] chat.type.advancement.task, gg"),
			Entry("any message key", config.AnyMessageKey, "[Key] Any Message, gg"),
		)
	})

	Describe("JSON", func() {
		It("should use the persisted field names", func() {
			n.AddTrigger(config.NewTrigger("hi"))
			n.AddResponseMessage(config.NewResponseMessage("hello"))

			data, err := json.Marshal(n)
			Expect(err).NotTo(HaveOccurred())

			var raw map[string]any
			Expect(json.Unmarshal(data, &raw)).To(Succeed())
			Expect(raw).To(HaveKey("exclusionTriggers"))
			Expect(raw).To(HaveKey("responseMessages"))
			Expect(raw).To(HaveKey("textStyle"))
			Expect(raw["triggers"]).To(ConsistOf(HaveKeyWithValue("pattern", "hi")))
			Expect(raw["responseMessages"]).To(ConsistOf(HaveKeyWithValue("string", "hello")))
		})
	})
})

var _ = Describe("Trigger", func() {
	It("should ignore regex for key triggers", func() {
		t := config.NewKeyTrigger("chat.type.advancement.task")
		t.IsRegex = true

		Expect(t.UsesRegex()).To(BeFalse())
	})

	It("should treat whitespace as blank", func() {
		Expect(config.NewTrigger(" \t").IsBlank()).To(BeTrue())
		Expect(config.NewExclusionTrigger("x").IsBlank()).To(BeFalse())
	})
})
