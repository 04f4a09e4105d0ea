package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"

	"tourney/element"
	"tourney/protocol"
)

// A scripted stand-in for the tournament server: accepts one client,
// walks it through a two-turn game and reports a fixed result. Useful
// for smoke-testing the client without a real server.
func main() {
	port := flag.String("port", "13050", "port to listen on")
	flag.Parse()

	address := ":" + *port
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	fmt.Printf("Mock game server listening on %s\n", address)

	for {
		conn, err := lis.Accept()
		if err != nil {
			log.Fatalf("Failed to accept: %v", err)
		}
		serve(conn)
	}
}

func serve(conn net.Conn) {
	defer conn.Close()
	reader := element.NewReader(conn, slog.Default())

	// Wait for the client's envelope, then its join request.
	for {
		tok, err := reader.Token()
		if err != nil {
			log.Printf("Handshake failed: %v", err)
			return
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == protocol.Envelope {
			break
		}
	}
	join, err := reader.ReadDocument()
	if err != nil {
		log.Printf("No join request: %v", err)
		return
	}
	log.Printf("Client sent <%s>", join.Name)

	room := "mock"
	script := []string{
		fmt.Sprintf(`<joined roomId=%q/>`, room),
		fmt.Sprintf(`<room roomId=%q><data class="welcomeMessage" color="ONE"/></room>`, room),
		fmt.Sprintf(`<room roomId=%q><data class="memento"><state turn="0"><board><pieces><entry><coords x="0" y="0"/><piece type="Herzmuschel" team="ONE" count="1"/></entry><entry><coords x="7" y="7"/><piece type="Moewe" team="TWO" count="1"/></entry></pieces></board><ambers></ambers><startTeam>ONE</startTeam></state></data></room>`, room),
		fmt.Sprintf(`<room roomId=%q><data class="moveRequest"/></room>`, room),
	}

	if _, err := fmt.Fprintf(conn, "<%s>", protocol.Envelope); err != nil {
		log.Printf("Write failed: %v", err)
		return
	}
	for _, message := range script {
		if _, err := fmt.Fprint(conn, message); err != nil {
			log.Printf("Write failed: %v", err)
			return
		}
	}

	// The client must answer the move request before anything else
	// happens.
	move, err := reader.ReadDocument()
	if err != nil {
		log.Printf("No move: %v", err)
		return
	}
	log.Printf("Client moved: %s", move.String())

	result := fmt.Sprintf(`<room roomId=%q><data class="result"><definition><fragment name="Siegpunkte"><aggregation>SUM</aggregation><relevantForRanking>true</relevantForRanking></fragment></definition><scores><entry><player name="mock-bot" team="ONE"/><score cause="REGULAR" reason=""><part>2</part></score></entry></scores><winner team="ONE"/></data></room>`, room)
	teardown := fmt.Sprintf(`<left roomId=%q/></%s>`, room, protocol.Envelope)
	if _, err := fmt.Fprint(conn, result+teardown); err != nil {
		log.Printf("Write failed: %v", err)
	}
}
