package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	a := flag.String("a", "http://localhost:8080", "Server address")
	flag.Parse()
	address := *a

	const iterations = 5

	client := resty.New()
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Get(address + "/ping"); err != nil {
			log.Fatal(err)
		}
	}

	// Registering and logging in a throwaway account
	username := "loader_" + randStringBytes(8)
	password := uuid.NewString()
	log.Println("Registering account", username)
	_, err := client.R().SetFormData(map[string]string{
		"username":     username,
		"email":        username + "@loadtest.local",
		"password":     password,
		"con_password": password,
	}).Post(address + "/register")
	if err != nil {
		log.Fatal(err)
	}
	res, err := client.R().SetFormData(map[string]string{
		"username": username,
		"password": password,
	}).Post(address + "/login")
	if err != nil {
		log.Fatal(err)
	}
	session := res.Cookies()
	if len(session) == 0 {
		log.Fatal("no session cookie received on login")
	}
	client.SetCookies(session)

	// Performing link creation loading
	log.Println("Performing link creation loading")
	for i := 0; i < iterations; i++ {
		payload := map[string]string{
			"originalUrl": "https://www." + randStringBytes(10) + ".com",
			"customAlias": "load" + strconv.Itoa(i),
		}
		res, err := client.R().SetFormData(payload).Post(address + "/dashboard")
		if err != nil {
			log.Fatal(err)
		}
		log.Println("created", payload["customAlias"], "status", res.StatusCode())
	}
	time.Sleep(1 * time.Second)

	// Performing redirect loading
	log.Println("Performing redirect loading")
	for i := 0; i < iterations; i++ {
		res, err := client.R().Get(address + "/" + username + ".load" + strconv.Itoa(i))
		if err != nil {
			log.Fatal(err)
		}
		log.Println("redirect status", res.StatusCode())
	}

	// Fetching history
	log.Println("Fetching history")
	res, err = client.R().Get(address + "/history/" + username)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("history status", res.StatusCode())
}
