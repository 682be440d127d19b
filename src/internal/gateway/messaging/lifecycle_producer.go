package messaging

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/pkg/kafka"
	"wallet-service/src/pkg/log"
)

const (
	TopicLeaveStatus     = "leave-status"
	TopicVoucherStatus   = "voucher-status"
	TopicIdentityEvent   = "identity-event"
	TopicTrainingEvent   = "training-event"
	TopicInvestmentEvent = "investment-event"
)

// LifecycleProducer fans status events out to one topic per record kind.
type LifecycleProducer struct {
	LeaveProducer      Producer[*model.StatusEvent]
	VoucherProducer    Producer[*model.StatusEvent]
	IdentityProducer   Producer[*model.StatusEvent]
	TrainingProducer   Producer[*model.StatusEvent]
	InvestmentProducer Producer[*model.StatusEvent]
}

func NewLifecycleProducer(producer kafka.Producer, log log.Log) *LifecycleProducer {
	topic := func(name string) Producer[*model.StatusEvent] {
		return Producer[*model.StatusEvent]{Producer: producer, Topic: name, Log: log}
	}
	return &LifecycleProducer{
		LeaveProducer:      topic(TopicLeaveStatus),
		VoucherProducer:    topic(TopicVoucherStatus),
		IdentityProducer:   topic(TopicIdentityEvent),
		TrainingProducer:   topic(TopicTrainingEvent),
		InvestmentProducer: topic(TopicInvestmentEvent),
	}
}

func (p *LifecycleProducer) SendLeave(event *model.StatusEvent) error {
	return p.LeaveProducer.Send(event)
}

func (p *LifecycleProducer) SendVoucher(event *model.StatusEvent) error {
	return p.VoucherProducer.Send(event)
}

func (p *LifecycleProducer) SendIdentity(event *model.StatusEvent) error {
	return p.IdentityProducer.Send(event)
}

func (p *LifecycleProducer) SendTraining(event *model.StatusEvent) error {
	return p.TrainingProducer.Send(event)
}

func (p *LifecycleProducer) SendInvestment(event *model.StatusEvent) error {
	return p.InvestmentProducer.Send(event)
}
