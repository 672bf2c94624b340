package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		interviewsStarted,
		interviewsCompleted,
		interviewQuestions,
		resumesScored,
	)
}

var (
	interviewsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "interviews_started_total",
			Help: "Interview sessions created.",
		},
	)

	interviewsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "interviews_completed_total",
			Help: "Interview sessions that reached the completed state.",
		},
	)

	interviewQuestions = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interview_questions_generated",
			Help:    "Questions generated per interview.",
			Buckets: []float64{1, 3, 5, 8, 12, 20, 30},
		},
	)

	resumesScored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resumes_scored_total",
			Help: "Resume uploads scored by the model.",
		},
	)
)

func IncInterviewStarted(questions int) {
	interviewsStarted.Inc()
	interviewQuestions.Observe(float64(questions))
}

func IncInterviewCompleted() { interviewsCompleted.Inc() }

func IncResumeScored() { resumesScored.Inc() }
