package logger

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/aws/aws-sdk-go-v2/aws"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

type sourceStat struct {
	fetches int64
	bytes   int64
}

var (
	errorsCurrency int64
	errorsCrypto   int64
	warnsCurrency  int64
	warnsCrypto    int64
	currencyPolls  int64
	cryptoPolls    int64
	botUpdates     int64
	sources        sync.Map // map[string]*sourceStat
)

func recordWarn(component string) {
	if strings.Contains(component, "crypto") {
		atomic.AddInt64(&warnsCrypto, 1)
	} else if strings.Contains(component, "currency") {
		atomic.AddInt64(&warnsCurrency, 1)
	}
}

func recordError(component string) {
	if strings.Contains(component, "crypto") {
		atomic.AddInt64(&errorsCrypto, 1)
	} else if strings.Contains(component, "currency") {
		atomic.AddInt64(&errorsCurrency, 1)
	}
}

// IncrementCurrencyPoll records one successful currency snapshot poll of
// the given payload size.
func IncrementCurrencyPoll(size int) {
	atomic.AddInt64(&currencyPolls, 1)
	recordSource("currency_rest", size)
}

// IncrementCryptoPoll records one successful crypto poll (bulk or
// per-symbol) of the given payload size.
func IncrementCryptoPoll(size int) {
	atomic.AddInt64(&cryptoPolls, 1)
	recordSource("crypto_rest", size)
}

// IncrementBotUpdate records one handled Telegram update.
func IncrementBotUpdate() {
	atomic.AddInt64(&botUpdates, 1)
	recordSource("telegram_updates", 0)
}

func RecordSourceMessage(name string, size int) {
	recordSource(name, size)
}

func recordSource(name string, size int) {
	v, _ := sources.LoadOrStore(name, &sourceStat{})
	ss := v.(*sourceStat)
	atomic.AddInt64(&ss.fetches, 1)
	atomic.AddInt64(&ss.bytes, int64(size))
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(ctx, log)
			}
		}
	}()
}

// StartReport begins periodic logging of system and source statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(ctx context.Context, log *Log) {
	cpuPercent, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")
	netStats, _ := gnet.IOCounters(false)
	sourceData := map[string]map[string]int64{}
	sources.Range(func(k, v any) bool {
		name := k.(string)
		ss := v.(*sourceStat)
		sourceData[name] = map[string]int64{
			"fetches": atomic.LoadInt64(&ss.fetches),
			"bytes":   atomic.LoadInt64(&ss.bytes),
		}
		return true
	})

	cpuPct := 0.0
	if len(cpuPercent) > 0 {
		cpuPct = cpuPercent[0]
	}

	bytesSent := uint64(0)
	bytesRecv := uint64(0)
	if len(netStats) > 0 {
		bytesSent = netStats[0].BytesSent
		bytesRecv = netStats[0].BytesRecv
	}

	fields := Fields{
		"errors_currency": atomic.LoadInt64(&errorsCurrency),
		"errors_crypto":   atomic.LoadInt64(&errorsCrypto),
		"warns_currency":  atomic.LoadInt64(&warnsCurrency),
		"warns_crypto":    atomic.LoadInt64(&warnsCrypto),
		"currency_polls":  atomic.LoadInt64(&currencyPolls),
		"crypto_polls":    atomic.LoadInt64(&cryptoPolls),
		"bot_updates":     atomic.LoadInt64(&botUpdates),
		"goroutines":      runtime.NumGoroutine(),
		"cpu_percent":     cpuPct,
		"memory_mb":       int64(memStats.Used) / 1024 / 1024,
		"disk_mb":         int64(diskStats.Used) / 1024 / 1024,
		"sources":         sourceData,
		"net_bytes_sent":  int64(bytesSent),
		"net_bytes_recv":  int64(bytesRecv),
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")

	var data []cwtypes.MetricDatum
	data = append(data,
		cwtypes.MetricDatum{MetricName: aws.String("Arz-CPUPercent"), Unit: cwtypes.StandardUnitPercent, Value: aws.Float64(cpuPct)},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-MemoryMB"), Unit: cwtypes.StandardUnitMegabytes, Value: aws.Float64(float64(memStats.Used) / 1024 / 1024)},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-ErrorsCurrency"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&errorsCurrency)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-ErrorsCrypto"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&errorsCrypto)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-WarnsCurrency"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&warnsCurrency)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-WarnsCrypto"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&warnsCrypto)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-CurrencyPolls"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&currencyPolls)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-CryptoPolls"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&cryptoPolls)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-BotUpdates"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&botUpdates)))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-NetBytesSent"), Unit: cwtypes.StandardUnitBytes, Value: aws.Float64(float64(bytesSent))},
		cwtypes.MetricDatum{MetricName: aws.String("Arz-NetBytesRecv"), Unit: cwtypes.StandardUnitBytes, Value: aws.Float64(float64(bytesRecv))},
	)

	for name, stats := range sourceData {
		data = append(data,
			cwtypes.MetricDatum{
				MetricName: aws.String("Arz-SourceFetches"),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Source"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["fetches"])),
			},
			cwtypes.MetricDatum{
				MetricName: aws.String("Arz-SourceBytes"),
				Unit:       cwtypes.StandardUnitBytes,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Source"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["bytes"])),
			},
		)
	}

	publishMetrics(ctx, data)
}
