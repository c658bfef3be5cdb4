package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robomotive/diffbase.go/pkg/l1/comm/mqtt"
	"github.com/robomotive/diffbase.go/pkg/l1/msgs"

	_ "github.com/robomotive/diffbase.go/pkg/base/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/diffbase/"
)

func init() {
	if val := os.Getenv("DIFFBASE_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.OpenQueue(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	q.Sub("#", dump)
	<-(chan struct{})(nil)
}

func dump(topic string, payload []byte) {
	if strings.HasSuffix(topic, "/meta") {
		log.Printf("%s: %s", topic, string(payload))
		return
	}
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		log.Printf("%s: bad message: %v", topic, err)
		return
	}
	msg, err := typed.Decode()
	if err != nil {
		log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
		return
	}
	log.Printf("%s: [%s] %s", topic,
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
		msg.(msgs.SerializableMessage).Serializable().String())
}
