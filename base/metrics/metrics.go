/*Package metrics wraps datadog-go to facilitate metric recording.
Naming convention of metric keys:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/algogallery/goapi/base/log"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"

	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Ender finishes a timing started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		log.Log().Info("datadog_host not configured, metrics go to log")
		ddClient = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, metrics go to log")
		ddClient = &LogClient{}
		return
	}
	ddClient = cli
}

type impl struct {
	pfx  string
	tags []string
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &impl{
		pfx: pkgName + ".",
		tags: []string{
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

func (im *impl) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	ddClient.Gauge(im.pfx+key, val, im.mergeTags(tags), ddRate)
}

func (im *impl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	ddClient.Count(im.pfx+key, int64(val), im.mergeTags(tags), ddRate)
}

func (im *impl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	ddClient.Histogram(im.pfx+key, val, im.mergeTags(tags), ddRate)
}

func (im *impl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &timer{
		start: time.Now(),
		key:   im.pfx + key,
		tags:  im.mergeTags(tags),
	}
}

// mergeTags combines base tags with "k", "v" pairs into datadog "k:v" form
func (im *impl) mergeTags(kvs []string) []string {
	tags := make([]string, 0, len(im.tags)+len(kvs)/2)
	tags = append(tags, im.tags...)
	for i := 0; i+1 < len(kvs); i += 2 {
		v := kvs[i+1]
		if v == "" {
			v = TagValueNA
		}
		tags = append(tags, strings.ToLower(kvs[i])+":"+v)
	}
	return tags
}

type timer struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timer) End() {
	ddClient.TimeInMilliseconds(t.key, float64(time.Since(t.start).Milliseconds()), t.tags, ddRate)
}
