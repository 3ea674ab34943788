package services

import (
	"time"

	"github.com/yeremiapane/cafe-pos/events"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

// UnpaidMonitor memantau order bayar-nanti yang menggantung terlalu lama dan
// menyiarkan pengingat ke layar kasir. Meja order tersebut tetap occupied
// sampai pembayaran, jadi order basi juga berarti meja tersandera.
type UnpaidMonitor struct {
	Orders    *pos.OrderManager
	Interval  time.Duration
	Threshold time.Duration
	StopChan  chan struct{}

	notified map[string]bool
}

func NewUnpaidMonitor(orders *pos.OrderManager) *UnpaidMonitor {
	return &UnpaidMonitor{
		Orders:    orders,
		Interval:  1 * time.Minute,
		Threshold: 30 * time.Minute,
		StopChan:  make(chan struct{}),
		notified:  make(map[string]bool),
	}
}

func (um *UnpaidMonitor) Start() {
	go func() {
		ticker := time.NewTicker(um.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				um.checkUnpaid()
			case <-um.StopChan:
				return
			}
		}
	}()
}

func (um *UnpaidMonitor) Stop() {
	close(um.StopChan)
}

func (um *UnpaidMonitor) checkUnpaid() {
	cutoff := time.Now().Add(-um.Threshold)

	for _, order := range um.Orders.History() {
		if order.Status != models.OrderUnpaid {
			// Order yang sudah lunas tidak perlu diingat lagi
			delete(um.notified, order.ID)
			continue
		}
		if order.CreatedAt.After(cutoff) || um.notified[order.ID] {
			continue
		}

		um.notified[order.ID] = true
		utils.InfoLogger.Printf("Unpaid order %s open since %s (table=%s, total=%s)",
			order.ID, order.CreatedAt.Format(time.RFC3339), order.TableID,
			utils.FormatCurrency(order.Total))
		events.BroadcastStaffNotification(
			"Order " + order.ID + " is still unpaid: " + utils.FormatCurrency(order.Total))
	}
}
